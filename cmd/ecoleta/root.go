package main

import (
	"context"
	"fmt"
	"time"

	"ecoleta/internal/config"
	"ecoleta/internal/ibge"
	"ecoleta/internal/trace"
	"ecoleta/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is what every subcommand runs with, built in PersistentPreRunE.
type env struct {
	cfg     config.Config
	logger  *zap.Logger
	tracing *trace.Provider
	client  *ibge.Client

	newTracing func(ctx context.Context, serviceName string) (*trace.Provider, error)
}

func newEnv() *env {
	return &env{logger: zap.NewNop(), newTracing: trace.NewOTLPProvider}
}

// execute runs root and then flushes spans and logs. Cobra skips post-run
// hooks when a command fails, so the flush happens here instead.
func execute(ctx context.Context, root *cobra.Command, e *env) error {
	err := root.ExecuteContext(ctx)
	if cerr := e.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(e *env) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "ecoleta",
		Short:         "Pick a state and city to find waste collection points",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := config.New(cfgFile)
			flags := cmd.Root().PersistentFlags()
			for key, name := range map[string]string{
				"ibge.base_url": "base-url",
				"ibge.timeout":  "timeout",
				"log.path":      "log-file",
				"log.debug":     "debug",
			} {
				if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
					return err
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			tp, err := e.newTracing(cmd.Context(), cfg.Trace.ServiceName)
			if err != nil {
				logger.Warn("tracing disabled", zap.Error(err))
			}

			e.cfg = cfg
			e.logger = logger
			e.tracing = tp
			e.client = ibge.New(cfg.IBGE.BaseURL,
				ibge.WithTimeout(cfg.IBGE.Timeout),
				ibge.WithTracer(tp.Tracer()),
				ibge.WithLogger(logger.Named("ibge")),
			)
			logger.Debug("config loaded",
				zap.String("base_url", cfg.IBGE.BaseURL),
				zap.Duration("timeout", cfg.IBGE.Timeout))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			model := ui.NewAppModel(e.client, e.logger.Named("ui")).AsTeaModel()
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.config/ecoleta/config.toml)")
	pf.String("base-url", "", "IBGE localidades API base URL")
	pf.Duration("timeout", 0, "per-request timeout")
	pf.String("log-file", "", "write logs to this file (the TUI owns the terminal)")
	pf.Bool("debug", false, "verbose development logging")

	root.AddCommand(statesCmd(e), citiesCmd(e))
	return root
}

func statesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "Print state codes ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := e.client.RegionCodes(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range codes {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func citiesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "cities <UF>",
		Short: "Print the municipalities of a state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := e.client.LocalityNames(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func (e *env) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := e.tracing.Shutdown(ctx)
	_ = e.logger.Sync()
	return err
}

// newLogger builds the zap logger. The TUI draws on stdout, so logs only go
// to a file; an empty path yields a no-op logger.
func newLogger(c config.LogConfig) (*zap.Logger, error) {
	if c.Path == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	if c.Debug {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{c.Path}
	zc.ErrorOutputPaths = []string{c.Path}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
