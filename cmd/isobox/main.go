// Command isobox renders isometric rounded-top box scenes to PNG or SVG.
package main

import (
	"os"

	"github.com/go-drift/isobox/cmd/isobox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
