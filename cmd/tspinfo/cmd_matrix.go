// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatrixCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <file>",
		Short: "Print the distance matrix of an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := load(g, args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			table, err := rowsOf(in.Distances)
			if err != nil {
				return err
			}
			if g.json {
				return writeJSON(cmd.OutOrStdout(), table)
			}
			fmt.Fprint(cmd.OutOrStdout(), in.Distances)

			return nil
		},
	}
}
