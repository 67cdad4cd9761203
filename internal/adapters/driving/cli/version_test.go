package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runRoot(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "supergrep version dev\n", stdout)
}
