// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vicinity/internal/scenario"
)

// runCommand creates the "run" command.
func (c *CLI) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml|scenario.toml>",
		Short: "Replay a scenario file and print its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("loaded scenario", "file", args[0], "vertices", len(s.Vertices), "ops", len(s.Ops))

			prog := newProgress(c.Logger)
			if _, err := s.Run(cmd.OutOrStdout()); err != nil {
				return err
			}
			prog.done("replayed scenario", "name", s.Name, "steps", len(s.Edges)+len(s.Ops))
			return nil
		},
	}
}

// demoScenario is the ten-vertex demo: seven edges, a print, deletion of the
// heaviest vertex, another print.
func demoScenario(seed int64) *scenario.Scenario {
	return &scenario.Scenario{
		Name:       "demo",
		Seed:       seed,
		VerifyEach: true,
		Vertices: []scenario.Vertex{
			{ID: 1, Weight: 3}, {ID: 2, Weight: 4}, {ID: 3, Weight: 1}, {ID: 4, Weight: 1}, {ID: 5, Weight: 1},
			{ID: 6, Weight: 9}, {ID: 7, Weight: 15}, {ID: 8, Weight: 6}, {ID: 9, Weight: 111}, {ID: 10, Weight: 2},
		},
		Edges: [][]int64{{9, 10}, {9, 1}, {9, 5}, {2, 10}, {4, 7}, {1, 3}, {7, 6}},
		Ops: []scenario.Op{
			{Op: scenario.OpMax},
			{Op: scenario.OpPrint},
			{Op: scenario.OpDelete, ID: 9},
			{Op: scenario.OpMax},
			{Op: scenario.OpPrint},
		},
	}
}

// demoCommand creates the "demo" command.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the built-in ten-vertex demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printTitle(out, "Demo")
			g, err := demoScenario(c.cfg.Seed).Run(out)
			if err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			printSuccess(out, "%d nodes, %d edges remain", g.NodeCount(), g.EdgeCount())
			return nil
		},
	}
}
