// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vicinity/internal/measure"
)

// measureCommand creates the "measure" command.
func (c *CLI) measureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Report the max rank of random graphs with 2^i unit-weight vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			mc := c.cfg.Measure
			cfg := measure.Config{From: mc.From, To: mc.To, Trials: mc.Trials, Seed: c.cfg.Seed}

			printTitle(out, "Measure")
			printDetail(out, "i · nodes · edges (mean ± sd) · max rank (mean ± sd)")
			prog := newProgress(c.Logger)
			_, err := measure.Run(cmd.Context(), cfg, func(s measure.Summary) {
				printRow(out,
					fmt.Sprint(s.Exponent),
					fmt.Sprint(s.Nodes),
					fmt.Sprintf("%.1f ± %.1f", s.MeanEdges, s.StdEdges),
					fmt.Sprintf("%.2f ± %.2f", s.MeanRank, s.StdRank),
				)
				c.Logger.Debug("measured", "i", s.Exponent, "trials", len(s.Trials))
			})
			if err != nil {
				return err
			}
			prog.done("measured", "from", cfg.From, "to", cfg.To)
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("from", 6, "smallest exponent")
	f.Int("to", 16, "largest exponent")
	f.Int("trials", 1, "trials per size")

	return cmd
}
