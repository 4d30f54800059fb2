// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type coordView struct {
	Node int     `json:"node"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func newCoordsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "coords <file>",
		Short: "Print the display coordinates of an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := load(g, args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			if !in.HasCoordinates() {
				return errors.New("instance has no DISPLAY_DATA_SECTION")
			}

			views := make([]coordView, in.Dimension)
			for i := range views {
				x, y, err := in.Coordinate(i)
				if err != nil {
					return err
				}
				views[i] = coordView{Node: i + 1, X: x, Y: y}
			}

			out := cmd.OutOrStdout()
			if g.json {
				return writeJSON(out, views)
			}
			for _, v := range views {
				fmt.Fprintf(out, "%d %g %g\n", v.Node, v.X, v.Y)
			}

			return nil
		},
	}
}
