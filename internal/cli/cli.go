// SPDX-License-Identifier: MIT
// Package cli implements the vicinity command-line interface.
//
// # Commands
//
//   - run: replay a YAML or TOML scenario file and print its transcript
//   - demo: replay the built-in ten-vertex demo
//   - check: cross-check the graph against a brute-force model on random workloads
//   - measure: run the doubling experiment (max rank vs. graph size)
//   - bench: time random operations, optionally dumping Prometheus metrics
//
// Settings come from --config (default $HOME/.vicinity.yaml), VICINITY_*
// environment variables and flags. Logging goes to stderr through
// charmbracelet/log; --verbose switches to debug level.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vicinity/internal/config"
	"github.com/katalvlaran/vicinity/neighborhood"
)

const appName = "vicinity"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfgFile string
	verbose bool
	loader  *config.Loader
	cfg     config.Config
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), loader: config.NewLoader()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "vicinity tracks the heaviest vertex neighborhood in a dynamic graph",
		Long:         `vicinity maintains, for every vertex, its own weight plus the weights of its neighbors, and answers "which vertex has the largest such sum" in O(1) while edges are added and vertices deleted.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.loadConfig(cmd)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default $HOME/.vicinity.yaml)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.Int64("seed", 1, "seed for hash parameters and random workloads")
	pf.Float64("load-factor", 0.5, "registry load factor in (0,1]")
	pf.Bool("edge-checks", false, "reject edges that already exist")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.measureCommand())
	root.AddCommand(c.benchCommand())

	return root
}

// loadConfig binds the persistent flags plus any flags of cmd annotated
// with a config key, then loads the settings tree.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	binds := map[string]string{
		"seed":        "seed",
		"load_factor": "load-factor",
		"edge_checks": "edge-checks",
	}
	for key, name := range binds {
		if err := c.loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	for key, name := range flagKeys[cmd.Name()] {
		if err := c.loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}

	cfg, err := c.loader.Load(c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if used := c.loader.Used(); used != "" {
		c.Logger.Debug("loaded config", "file", used)
	}

	return nil
}

// flagKeys maps per-command flag names to config keys.
var flagKeys = map[string]map[string]string{
	"check": {
		"check.nodes":      "nodes",
		"check.edges":      "edges",
		"check.deletions":  "deletions",
		"check.operations": "operations",
		"check.rounds":     "rounds",
		"check.full":       "full",
	},
	"measure": {
		"measure.from":   "from",
		"measure.to":     "to",
		"measure.trials": "trials",
	},
	"bench": {
		"check.nodes": "nodes",
		"check.edges": "edges",
	},
}

// graphOptions turns the loaded config into graph options.
func (c *CLI) graphOptions() []neighborhood.GraphOption {
	opts := []neighborhood.GraphOption{
		neighborhood.WithSeed(c.cfg.Seed),
		neighborhood.WithLoadFactor(c.cfg.LoadFactor),
	}
	if c.cfg.EdgeChecks {
		opts = append(opts, neighborhood.WithEdgeChecks())
	}
	return opts
}
