// Package cli defines the litemon command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Root command flags
var (
	configFlag   string
	intervalFlag string
	refreshFlag  string
	noGPUFlag    bool
	debugFlag    bool
)

// rootCmd runs the dashboard; litemon has no separate "monitor" subcommand.
var rootCmd = &cobra.Command{
	Use:   "litemon",
	Short: "Terminal-resident system resource monitor",
	Long: `litemon is a lightweight terminal dashboard for local system metrics.

It samples CPU, memory, disk, network, and GPU (when available) at a fixed
cadence and renders a continuously refreshing full-screen view.

Keyboard shortcuts:
  q / Ctrl+C       Quit
  up/k, down/j     Scroll the per-core CPU list
  PgUp / PgDn      Scroll the core list by a page
  Home / End       Jump to first / last core
  ?                Toggle expanded help

Examples:
  litemon
  litemon --interval 2s
  litemon --no-gpu
  litemon --config ./custom.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "sampling interval (e.g. 1s, 500ms)")
	rootCmd.Flags().StringVar(&refreshFlag, "refresh", "", "render interval (e.g. 100ms)")
	rootCmd.Flags().BoolVar(&noGPUFlag, "no-gpu", false, "disable GPU monitoring")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "log at debug level")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
