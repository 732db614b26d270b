// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/regina-lang/regina/pkg/eval"
	"github.com/regina-lang/regina/pkg/util/cmdutil"
)

func newRunCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "run [<file> | <dir>]",
		Short: "Run a Regina program",
		Long: "Run a Regina program\n" +
			"\n" +
			"The argument is either a source file or a project directory.  A directory runs the file\n" +
			"its Regina manifest names as `main`, or else its main file.  The entry module's main block\n" +
			"runs first; imported modules are loaded but their main blocks never run.",
		Args: cobra.MaximumNArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			fs := workingFs()

			prog, entry, err := load(ctx, fs, pathFromArgs(args))
			if err != nil {
				return err
			}

			opts := eval.Options{
				Stdin:  os.Stdin,
				Stdout: os.Stdout,
				Fs:     fs,
			}
			s := entry.Project.GetSeed()
			if cmd.Flags().Changed("seed") {
				s = seed
			}
			opts.Seed = &s

			return eval.New(prog, opts).Run(ctx)
		}),
	}

	cmd.PersistentFlags().Int64Var(
		&seed, "seed", 0,
		"Seed the random number generator, overriding the project's seed")

	return cmd
}
