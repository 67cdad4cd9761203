package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResultSet(t *testing.T) {
	t.Run("empty results yield nil, never an empty set", func(t *testing.T) {
		set := NewResultSet("/tmp/a.txt", "foo", FormatText, nil)
		assert.Nil(t, set)

		set = NewResultSet("/tmp/a.txt", "foo", FormatText, []SearchResult{})
		assert.Nil(t, set)
	})

	t.Run("populates fields and assigns an ID", func(t *testing.T) {
		results := []SearchResult{
			{Filepath: "/tmp/a.txt", Text: "foo", Location: LineLocation(0)},
		}
		set := NewResultSet("/tmp/a.txt", "foo", FormatText, results)

		require.NotNil(t, set)
		assert.NotEmpty(t, set.ID)
		assert.Equal(t, "/tmp/a.txt", set.Path)
		assert.Equal(t, "foo", set.Term)
		assert.Equal(t, FormatText, set.Format)
		assert.Len(t, set.Results, 1)
	})

	t.Run("IDs are unique per set", func(t *testing.T) {
		results := []SearchResult{{Filepath: "a", Text: "x", Location: LineLocation(1)}}
		first := NewResultSet("a", "x", FormatText, results)
		second := NewResultSet("a", "x", FormatText, results)

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestNewSectionLocation(t *testing.T) {
	t.Run("snapshots the stack at call time", func(t *testing.T) {
		stack := []string{"Intro", "Details"}
		loc := NewSectionLocation(stack)

		// Mutating the source stack afterwards must not change the
		// captured location.
		stack[1] = "Changed"

		assert.Equal(t, SectionLocation{"Intro", "Details"}, loc)
	})

	t.Run("empty stack snapshots to an empty path", func(t *testing.T) {
		loc := NewSectionLocation(nil)
		assert.Empty(t, loc)
	})
}

func TestSearchResult_MarshalJSON(t *testing.T) {
	decode := func(t *testing.T, r SearchResult) map[string]any {
		t.Helper()
		data, err := json.Marshal(r)
		require.NoError(t, err)
		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		return out
	}

	t.Run("line zero is still emitted", func(t *testing.T) {
		out := decode(t, SearchResult{Filepath: "a.txt", Text: "foo", Location: LineLocation(0)})

		assert.Equal(t, float64(0), out["line"])
		assert.NotContains(t, out, "page")
		assert.NotContains(t, out, "section")
	})

	t.Run("page location", func(t *testing.T) {
		out := decode(t, SearchResult{Filepath: "a.pdf", Text: "foo", Location: PageLocation(3)})

		assert.Equal(t, float64(3), out["page"])
		assert.NotContains(t, out, "line")
	})

	t.Run("section location and absent text", func(t *testing.T) {
		out := decode(t, SearchResult{
			Filepath: "a.odt",
			Location: SectionLocation{"Intro", "Details"},
		})

		assert.Equal(t, []any{"Intro", "Details"}, out["section"])
		assert.NotContains(t, out, "text")
		assert.NotContains(t, out, "line")
		assert.NotContains(t, out, "page")
	})
}
