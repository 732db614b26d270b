// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regina-lang/regina/pkg/util/cmdutil"
)

const version = "0.0.1"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Regina's version number",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Regina version %v\n", version)
			return nil
		}),
	}
}
