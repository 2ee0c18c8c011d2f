package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state resolved once in PersistentPreRunE and shared by all
// subcommands.
type app struct {
	cfg      Config
	log      *zap.Logger
	scenario Scenario
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	var (
		flagLevel    string
		flagFormat   string
		flagScenario string
	)

	root := &cobra.Command{
		Use:          "classics",
		Short:        "Demonstrate classic data structures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = flagLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = flagFormat
			}
			if flags.Changed("scenario") {
				cfg.Scenario = flagScenario
			}

			logger, err := NewLogger(LogConfig{Format: cfg.LogFormat, Level: cfg.LogLevel})
			if err != nil {
				return err
			}
			scenario, err := LoadScenario(cfg.Scenario)
			if err != nil {
				return err
			}
			a.cfg, a.log, a.scenario = cfg, logger, scenario
			a.log.Debug("configuration loaded",
				zap.String("level", cfg.LogLevel),
				zap.String("format", cfg.LogFormat),
				zap.String("scenario", cfg.Scenario))

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagLevel, "log-level", "info", "log level: debug, info, warn, error (env CLASSICS_LOG_LEVEL)")
	pf.StringVar(&flagFormat, "log-format", "console", "log format: console or json (env CLASSICS_LOG_FORMAT)")
	pf.StringVar(&flagScenario, "scenario", "", "YAML scenario file; built-in walkthrough when empty (env CLASSICS_SCENARIO)")

	root.AddCommand(
		&cobra.Command{
			Use:   "heap",
			Short: "Insert into and remove from a min-heap",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.demo(cmd).runHeap(a.scenario.Heap)
			},
		},
		&cobra.Command{
			Use:   "graph",
			Short: "Build an adjacency-matrix graph and run BFS queries",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.demo(cmd).runGraph(a.scenario.Graph)
			},
		},
		&cobra.Command{
			Use:   "containers",
			Short: "Exercise the stack, queue, linked list and binary tree",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.demo(cmd).runContainers()
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Run every demo",
			RunE: func(cmd *cobra.Command, _ []string) error {
				d := a.demo(cmd)
				if err := d.runHeap(a.scenario.Heap); err != nil {
					return err
				}
				if a.scenario.Graph.Empty() {
					d.log.Info("graph section empty, skipping graph demo")
				} else if err := d.runGraph(a.scenario.Graph); err != nil {
					return err
				}
				return d.runContainers()
			},
		},
	)

	return root
}

func (a *app) demo(cmd *cobra.Command) *demo {
	return &demo{log: a.log.With(zap.String("command", cmd.Name())), out: cmd.OutOrStdout()}
}
