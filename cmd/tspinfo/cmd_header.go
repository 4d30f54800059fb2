// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type headerView struct {
	Name           string            `json:"name,omitempty"`
	Comment        string            `json:"comment,omitempty"`
	Dimension      int               `json:"dimension"`
	Format         string            `json:"edgeWeightFormat"`
	HasCoordinates bool              `json:"hasCoordinates"`
	Entries        map[string]string `json:"entries"`
}

func newHeaderCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the specification fields of an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := load(g, args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			view := headerView{
				Name:           in.Name,
				Comment:        in.Comment,
				Dimension:      in.Dimension,
				Format:         in.EdgeWeightFormat.String(),
				HasCoordinates: in.HasCoordinates(),
				Entries:        make(map[string]string, in.Entries.Len()),
			}
			for _, key := range in.Entries.Keys() {
				v, _ := in.Entries.Lookup(key)
				view.Entries[key] = v.String()
			}

			out := cmd.OutOrStdout()
			if g.json {
				return writeJSON(out, view)
			}
			for _, key := range in.Entries.Keys() {
				fmt.Fprintf(out, "%s: %s\n", key, view.Entries[key])
			}
			fmt.Fprintf(out, "coordinates: %t\n", view.HasCoordinates)

			return nil
		},
	}
}
