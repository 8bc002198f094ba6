// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/rootfinder"
)

func (a *app) countCmd() *cobra.Command {
	var search searchFlags
	cmd := &cobra.Command{
		Use:   "count <polynomial>",
		Short: "Count distinct real roots without isolating them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := poly.Parse(args[0])
			if err != nil {
				return err
			}
			iv, err := search.interval()
			if err != nil {
				return err
			}
			n, err := rootfinder.CountRealRoots(p, iv)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), n)

			return nil
		},
	}
	search.register(cmd)

	return cmd
}
