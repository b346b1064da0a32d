// FILE: lixenwraith/bitflags/cmd/bitflagsgen/check.go
package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/topi314/tint"
)

func NewCheckCmd(parent *cobra.Command) {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validates a declaration file and prints the resolved flag values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, doc, err := loadDeclaration(file)
			if err != nil {
				slog.Error("declaration file is invalid", tint.Err(err))
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i := range doc.Types {
				td := &doc.Types[i]
				repr, err := td.Representation()
				if err != nil {
					return err
				}
				flags, err := td.Resolve()
				if err != nil {
					return err
				}

				var all uint64
				fmt.Fprintf(w, "%s (%s)\n", td.Name, repr.Name)
				for _, f := range flags {
					fmt.Fprintf(w, "  %s\t%#.*x\n", f.Name, repr.Bits/4, f.Bits)
					all |= f.Bits
				}
				fmt.Fprintf(w, "  (all)\t%#.*x\n", repr.Bits/4, all)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			slog.Debug("declaration file is valid", slog.String("file", path), slog.Int("types", len(doc.Types)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "declaration file (toml, yaml or json)")

	parent.AddCommand(cmd)
}
