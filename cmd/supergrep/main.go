package main

import (
	"os"

	"github.com/supergrep-dev/supergrep/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
