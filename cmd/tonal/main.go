// Tonal - A Material colour scheme generator
//
// Tonal derives a complete colour scheme from an image or a single colour
// and prints it as a role to hex colour mapping.
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
