// FILE: lixenwraith/bitflags/cmd/bitflagsgen/main.go

// Command bitflagsgen generates typed flag set declarations from a TOML, YAML
// or JSON declaration file. It is meant to run from a go:generate directive:
//
//	//go:generate go run github.com/lixenwraith/bitflags/cmd/bitflagsgen generate -f flags.toml -o flags_gen.go
package main

import "os"

// These variables are set via the -ldflags option in go build
var (
	version   = "unknown"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	root := NewRootCmd()
	NewGenerateCmd(root)
	NewCheckCmd(root)
	NewVersionCmd(root)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
