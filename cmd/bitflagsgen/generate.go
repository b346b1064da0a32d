// FILE: lixenwraith/bitflags/cmd/bitflagsgen/generate.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/topi314/tint"

	"github.com/lixenwraith/bitflags"
	"github.com/lixenwraith/bitflags/internal/gen"
)

// generateJob is one declaration file to render
type generateJob struct {
	file       string
	output     string
	pkg        string
	importPath string
	stdout     io.Writer
}

func NewGenerateCmd(parent *cobra.Command) {
	var (
		job      generateJob
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates Go source for the types of a declaration file",
		Long: `Generates Go source for the types of a declaration file. For example:

bitflagsgen generate -f perm.toml -o perm_bitflags.go

Without -f, bitflags.{toml,yaml,yml,json} is looked up in the current
directory. Without -o, the output goes next to the declaration file.
Use -o - to print to stdout. With --watch, the file is regenerated
whenever the declaration file changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job.stdout = cmd.OutOrStdout()

			path, err := job.run()
			if err != nil || !watch {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := gen.DefaultWatchOptions()
			opts.PollInterval = interval
			slog.Info("watching declaration file", slog.String("file", path), slog.Duration("interval", opts.PollInterval))

			// Pin the discovered file so regeneration does not search again
			job.file = path
			return gen.Watch(ctx, path, opts, func() {
				// Failures are logged by run; keep watching for the next fix
				_, _ = job.run()
			})
		},
	}

	cmd.Flags().StringVarP(&job.file, "file", "f", "", "declaration file (toml, yaml or json)")
	cmd.Flags().StringVarP(&job.output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().StringVarP(&job.pkg, "package", "p", "", "package clause of the generated file")
	cmd.Flags().StringVar(&job.importPath, "import", gen.DefaultImportPath, "import path of the bitflags runtime package")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate when the declaration file changes")
	cmd.Flags().DurationVar(&interval, "interval", gen.DefaultPollInterval, "poll interval of --watch")

	parent.AddCommand(cmd)
}

// run loads, renders and writes one declaration file. It returns the path of
// the declaration file that was used.
func (j *generateJob) run() (string, error) {
	path, doc, err := loadDeclaration(j.file)
	if err != nil {
		slog.Error("failed to load declarations", tint.Err(err))
		return path, err
	}

	pkg := j.pkg
	if pkg == "" && doc.Package == "" {
		// set by go generate
		pkg = os.Getenv("GOPACKAGE")
	}

	src, err := gen.Generate(doc, gen.Options{
		Package:    pkg,
		Source:     filepath.Base(path),
		ImportPath: j.importPath,
	})
	if err != nil {
		slog.Error("failed to generate source", slog.String("file", path), tint.Err(err))
		return path, err
	}

	if j.output == "-" {
		_, err = j.stdout.Write(src)
		return path, err
	}
	output := j.output
	if output == "" {
		output = gen.OutputPath(path)
	}

	written, err := gen.WriteFile(output, src)
	if err != nil {
		slog.Error("failed to write output", slog.String("output", output), tint.Err(err))
		return path, err
	}
	if written {
		slog.Info("generated flag set types", slog.String("output", output), slog.Int("types", len(doc.Types)))
	} else {
		slog.Debug("output is up to date", slog.String("output", output))
	}
	return path, nil
}

// loadDeclaration loads file, or the discovered declaration file when empty
func loadDeclaration(file string) (string, *bitflags.Document, error) {
	if file == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		file, err = gen.Discover(gen.DefaultDiscoveryOptions(cwd))
		if err != nil {
			return "", nil, err
		}
		slog.Debug("discovered declaration file", slog.String("file", file))
	}

	doc, err := bitflags.LoadDocument(file)
	if err != nil {
		return file, nil, err
	}
	return file, doc, nil
}
