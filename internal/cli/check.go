// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vicinity/internal/config"
	"github.com/katalvlaran/vicinity/internal/oracle"
)

// checkCommand creates the "check" command.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check the graph against a brute-force model on random workloads",
		Long: `check builds a graph of random vertices and applies, per round: random edge
insertions, random deletions and an interleaved mix, verifying node count,
edge count and the maximum after every batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cc := c.cfg.Check
			printTitle(out, "Check")
			printKeyValue(out, "nodes", fmt.Sprint(cc.Nodes))
			printKeyValue(out, "edges", fmt.Sprint(cc.Edges))
			printKeyValue(out, "deletions", fmt.Sprint(cc.Deletions))
			printKeyValue(out, "operations", fmt.Sprint(cc.Operations))

			for r := 0; r < cc.Rounds; r++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				seed := c.cfg.Seed + int64(r)
				prog := newProgress(c.Logger)
				verified, err := checkRound(cc, seed)
				if err != nil {
					printFailure(out, "round %d (seed %d)", r+1, seed)
					return err
				}
				printSuccess(out, "round %d (seed %d): %d verifications", r+1, seed, verified)
				prog.done("round finished", "round", r+1)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("nodes", 1000, "vertices per round")
	f.Int("edges", 2000, "random edges per round")
	f.Int("deletions", 500, "random deletions per round")
	f.Int("operations", 500, "interleaved operations per round")
	f.Int("rounds", 1, "independent rounds, seeded seed, seed+1, ...")
	f.Bool("full", false, "compare every neighborhood weight and validate structure after each batch")

	return cmd
}

// checkRound runs one seeded round and returns the number of verifications.
func checkRound(cc config.CheckConfig, seed int64) (int, error) {
	var opts []oracle.DriverOption
	if cc.Full {
		opts = append(opts, oracle.WithFullChecks())
	}
	d, err := oracle.NewDriver(cc.Nodes, seed, opts...)
	if err != nil {
		return 0, err
	}
	if err := d.RandomEdges(cc.Edges); err != nil {
		return d.Verifications(), err
	}
	if err := d.RandomDeletions(cc.Deletions); err != nil {
		return d.Verifications(), err
	}
	if err := d.RandomOperations(cc.Operations); err != nil {
		return d.Verifications(), err
	}
	return d.Verifications(), nil
}
