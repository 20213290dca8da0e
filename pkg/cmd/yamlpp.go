// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aidmat/yamlpp/pkg/cmd/ui"
	"github.com/aidmat/yamlpp/pkg/preprocess"
	"github.com/aidmat/yamlpp/pkg/version"
	"github.com/aidmat/yamlpp/pkg/watch"
	"github.com/aidmat/yamlpp/pkg/yamlmeta"
	"github.com/cppforlife/cobrautil"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

const DefaultOutputPath = "./aidmat_api_doc.yaml"

type YamlppOptions struct {
	OutputPath string
	Verbose    bool
	Format     FormatFlag
	Watch      bool
	Debug      bool

	fs     billy.Filesystem
	stdout io.Writer
	stderr io.Writer
}

func NewDefaultYamlppOptions() *YamlppOptions {
	return NewYamlppOptions(osfs.New("/"), os.Stdout, os.Stderr)
}

// NewYamlppOptions reads and writes through fs, which must resolve absolute paths.
func NewYamlppOptions(fs billy.Filesystem, stdout, stderr io.Writer) *YamlppOptions {
	return &YamlppOptions{
		OutputPath: DefaultOutputPath,
		Format:     NewFormatFlag(yamlmeta.FormatYAML),
		fs:         fs,
		stdout:     stdout,
		stderr:     stderr,
	}
}

func NewDefaultYamlppCmd() *cobra.Command {
	return NewYamlppCmd(NewDefaultYamlppOptions())
}

func NewYamlppCmd(o *YamlppOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "yamlpp INPUT",
		Version: version.Version,
		Short:   "yamlpp resolves includes and generics in YAML documents",
		Long: `yamlpp resolves includes and generics in YAML documents.

  $include: <glob>         replaced by the merged content of the matching files
  Name<GENERIC>: <body>    defines a template (removed from the output)
  $generic: {target: Name, Placeholder: value, ...}
                           replaced by the template with placeholders bound`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error { return o.Run(args[0]) },
	}

	cmd.Flags().StringVarP(&o.OutputPath, "out", "o", o.OutputPath, "Output file path ('-' for stdout)")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "Print progress information")
	cmd.Flags().Var(&o.Format, "format", "Output format (yaml, json, toml)")
	cmd.Flags().BoolVar(&o.Watch, "watch", false, "Run again whenever an input file changes")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Print the resolved tree annotated with source positions (implies --verbose)")

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions(ui.NewCustomWriterTTY(false, o.stdout, o.stderr))))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.ReconfigureLeafCmds(cobrautil.DisallowExtraArgs),
		cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

func (o *YamlppOptions) Run(inputPath string) error {
	cmdUI := ui.NewCustomWriterTTY(o.Verbose || o.Debug, o.stdout, o.stderr)

	rootPath, err := filepath.Abs(inputPath)
	if err != nil {
		return err
	}

	outPath := o.OutputPath
	if outPath != preprocess.StdoutPath {
		outPath, err = filepath.Abs(outPath)
		if err != nil {
			return err
		}
	}

	cmdUI.Debugf("input file  : %s\noutput file : %s\nbase path   : %s\n",
		rootPath, outPath, filepath.Dir(rootPath))

	pipeline := preprocess.NewPipeline(o.fs, preprocess.Options{Format: o.Format.Format(), DebugTree: o.Debug}, cmdUI)

	runFunc := func() (watch.Inputs, error) {
		result, err := pipeline.Run(rootPath)
		inputs := watch.Inputs{Files: result.Files, GlobBases: result.GlobBases}
		if err != nil {
			return inputs, err
		}

		cmdUI.Debugf("Writing to a file\n")

		err = preprocess.WriteResult(o.fs, result, outPath, o.stdout)
		if err != nil {
			return inputs, err
		}

		cmdUI.Debugf("All done\n")
		return inputs, nil
	}

	if !o.Watch {
		_, err := runFunc()
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watcher, err := watch.New(watch.Options{IgnorePaths: []string{outPath}, FS: o.fs}, cmdUI, runFunc)
	if err != nil {
		return err
	}

	return watcher.Watch(ctx, filepath.Dir(rootPath))
}
