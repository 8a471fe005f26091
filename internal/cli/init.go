package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"litemon/internal/config"
	"litemon/internal/errors"
)

var initForce bool

// initCmd creates a starter .litemon.yaml in the current directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .litemon.yaml configuration",
	Long: `Write a starter configuration file with the default settings.

The file is created in the current directory. Edit it to change the sampling
cadence, exclude filesystem types, disable GPU monitoring, or enable the
diagnostic log file.

Examples:
  litemon init
  litemon init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(".", initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// Init writes the starter config into dir. An existing file prompts for
// confirmation unless force is set.
func Init(dir string, force bool) error {
	path := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	data, err := starterConfig()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

// starterConfig renders the default settings as YAML. Durations are written
// as strings ("1s", "100ms") so the file reads the way users write it.
func starterConfig() ([]byte, error) {
	defaults := config.DefaultConfig()

	doc := map[string]any{
		"version":         defaults.Version,
		"interval":        defaults.Interval.String(),
		"render_interval": defaults.RenderInterval.String(),
		"gpu": map[string]any{
			"enabled": defaults.GPU.Enabled,
		},
		"disk": map[string]any{
			"exclude_fstypes": defaults.Disk.ExcludeFstypes,
		},
		"log": map[string]any{
			"file":        defaults.Log.File,
			"level":       defaults.Log.Level,
			"max_size_mb": defaults.Log.MaxSizeMB,
		},
	}

	body, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to render starter config", "")
	}

	header := "# litemon configuration\n# See 'litemon --help' for the matching command-line flags.\n"
	return append([]byte(header), body...), nil
}
