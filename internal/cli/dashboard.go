package cli

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"litemon/internal/config"
	"litemon/internal/dashboard"
	"litemon/internal/errors"
	"litemon/internal/logger"
	"litemon/internal/metrics"
)

// runDashboard loads configuration, probes the system, and hands the
// terminal to the Bubble Tea program until the user quits.
func runDashboard() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"stdout is not a terminal",
			"litemon needs an interactive terminal; run it directly, not through a pipe")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info().
		Dur("interval", cfg.Interval).
		Dur("render_interval", cfg.RenderInterval).
		Bool("gpu_enabled", cfg.GPU.Enabled).
		Msg("starting dashboard")

	agg := metrics.NewAggregator(context.Background(), cfg, log)
	model := dashboard.NewModel(agg, cfg.Interval, cfg.RenderInterval, log)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("dashboard terminated")
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard terminated unexpectedly",
			"Check the terminal supports the alternate screen; see the log file for details")
	}

	log.Info().Msg("dashboard stopped")
	return nil
}

// loadConfig resolves the effective config: file (or defaults), then CLI
// flag overrides, then validation of the combined result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if intervalFlag != "" {
		parsed, err := time.ParseDuration(intervalFlag)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid --interval value: "+intervalFlag,
				"Use a duration like 1s, 500ms, or 2s")
		}
		cfg.Interval = parsed
	}

	if refreshFlag != "" {
		parsed, err := time.ParseDuration(refreshFlag)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid --refresh value: "+refreshFlag,
				"Use a duration like 100ms or 250ms")
		}
		cfg.RenderInterval = parsed
	}

	if noGPUFlag {
		cfg.GPU.Enabled = false
	}

	if debugFlag {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
