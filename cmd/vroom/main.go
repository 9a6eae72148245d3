package main

import (
	"os"

	"github.com/scbrown/vroom/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
