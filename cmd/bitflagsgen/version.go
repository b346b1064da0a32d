// FILE: lixenwraith/bitflags/cmd/bitflagsgen/version.go
package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

func NewVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version of bitflagsgen",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("Go Version: %s\nVersion: %s\nCommit: %s\nBuild Time: %s\n",
				runtime.Version(), version, commit, buildTime)
		},
	}

	parent.AddCommand(cmd)
}
