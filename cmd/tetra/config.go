package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML, after the search path and the
--difficulty preset are applied. Save the output to
~/.tetra/configs/tetris.yaml (or pass it with --config) to customize it.

Search order:
  --config <path> -> ~/.tetra/configs/tetris.yaml -> ./configs/tetris.yaml -> built-in

Examples:
  tetra config
  tetra config --difficulty hard
  tetra config --defaults > ~/.tetra/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	preset, err := parseDifficulty()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flagConfig, preset)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
