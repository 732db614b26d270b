// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/regina-lang/regina/pkg/compiler"
	"github.com/regina-lang/regina/pkg/diag"
	"github.com/regina-lang/regina/pkg/util/cmdutil"
	"github.com/regina-lang/regina/pkg/workspace"
)

// NewReginaCmd creates a new Regina Cmd instance.
func NewReginaCmd() *cobra.Command {
	var color bool
	var logToStderr bool
	var tracing string
	var verbose int
	cmd := &cobra.Command{
		Use:   "regina",
		Short: "Regina runs programs written in the Regina language",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmdutil.InitLogging(logToStderr, verbose)
			pwd, _ := os.Getwd()
			cmdutil.InitDiag(diag.FormatOptions{Pwd: pwd, Colors: color, Source: workingFs()})
			if tracing != "" {
				cmdutil.InitTracing("regina", tracing)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cmdutil.CloseTracing()
			glog.Flush()
		},
	}

	cmd.PersistentFlags().BoolVar(&color, "color", true, "Colorize diagnostics")
	cmd.PersistentFlags().BoolVar(&logToStderr, "logtostderr", false, "Log to stderr instead of to files")
	cmd.PersistentFlags().StringVar(&tracing, "tracing", "", "Emit tracing to a Zipkin-compatible tracing endpoint")
	cmd.PersistentFlags().IntVarP(
		&verbose, "verbose", "v", 0, "Enable verbose logging (e.g., v=3); anything >3 is very verbose")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func pathFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return "."
}

// load finds the entry of the program at path and loads it along with everything it imports.
func load(ctx context.Context, fs afero.Fs, path string) (*compiler.Program, *workspace.Entry, error) {
	entry, err := workspace.DetectEntry(fs, path)
	if err != nil {
		return nil, nil, err
	}
	glog.V(3).Infof("Loading %v", entry.Path)

	opts := compiler.DefaultOpts()
	opts.Fs = fs
	prog, err := compiler.Load(ctx, opts, entry.Path)
	if err != nil {
		return nil, nil, err
	}
	return prog, entry, nil
}

// workingFs is the file system programs are loaded from and that their file functions touch.
func workingFs() afero.Fs {
	return afero.NewOsFs()
}
