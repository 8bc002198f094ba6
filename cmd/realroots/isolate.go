// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/realroots/poly"
)

func (a *app) isolateCmd() *cobra.Command {
	var (
		search searchFlags
		finder finderFlags
	)
	cmd := &cobra.Command{
		Use:   "isolate <polynomial>...",
		Short: "Isolate the real roots of one or more polynomials",
		Long: `Isolate prints every real root of each polynomial inside the search
interval, in ascending order, as an exact rational or an isolating interval.

Example:
  realroots isolate "x^3 - 2x" --left 0 --closed`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if err := finder.apply(cmd, &cfg); err != nil {
				return err
			}
			iv, err := search.interval()
			if err != nil {
				return err
			}
			opts, err := cfg.FinderOptions(a.logger)
			if err != nil {
				return err
			}

			results := make([]result, 0, len(args))
			for _, src := range args {
				p, err := poly.Parse(src)
				if err != nil {
					return err
				}
				res, err := isolate(cmd.Context(), p, iv, opts, cfg.Output.Digits)
				if err != nil {
					return fmt.Errorf("isolate %q: %w", src, err)
				}
				results = append(results, res)
			}

			return render(out(cmd), cfg.Output.Format, results)
		},
	}
	search.register(cmd)
	finder.register(cmd)

	return cmd
}
