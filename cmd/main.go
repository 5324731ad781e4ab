package main

import (
	"context"
	"os"

	"github.com/GBA-BI/drs-manifest/cmd/manifest"
)

func main() {
	command := manifest.NewManifestCommand(context.Background())
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
