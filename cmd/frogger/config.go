package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config or check a custom one",
	Long: `Print the embedded default configuration as YAML. Save it to
~/.frogger/configs/frogger.yaml or pass it with --config to customise lanes.

Examples:
  frogger config > ~/.frogger/configs/frogger.yaml
  frogger config --check ./my-frogger.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheck != "" {
		cfg, err := config.LoadFrogger(flagCheck)
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok, %d lanes on a %dx%d grid\n",
			flagCheck, len(cfg.Lanes), cfg.World.Columns, cfg.World.HeightRows)
		return nil
	}

	_, err := os.Stdout.Write(config.GetDefaultYAML("frogger"))
	return err
}
