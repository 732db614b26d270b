// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regina-lang/regina/pkg/util/cmdutil"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [<file> | <dir>]",
		Short: "Load a Regina program and its imports without running it",
		Args:  cobra.MaximumNArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			prog, entry, err := load(context.Background(), workingFs(), pathFromArgs(args))
			if err != nil {
				return err
			}
			fmt.Printf("%v: %d module(s) loaded\n", entry.Path, len(prog.Modules))
			return nil
		}),
	}
}
