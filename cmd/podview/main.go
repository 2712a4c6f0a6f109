package main

import (
	"os"

	"github.com/mmcdole/podview/internal/cli"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := cli.NewRootCmd(Version).Execute(); err != nil {
		os.Exit(1)
	}
}
