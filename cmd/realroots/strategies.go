// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/realroots/rootfinder"
)

func strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List splitting strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, s := range rootfinder.Strategies() {
				mark := ""
				if s == rootfinder.Default {
					mark = " (default)"
				}
				fmt.Fprintf(out(cmd), "%s%s\n", s, mark)
			}
		},
	}
}
