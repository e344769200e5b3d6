package main

import (
	"os"

	"github.com/baaaaaaaka/fast-scroller/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
