package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menta2k/sprite-cutter/internal/config"
	"github.com/menta2k/sprite-cutter/internal/utils"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write the default configuration",
	Long: `Writes the default configuration to PATH, or to the per-user config file
when PATH is omitted. The format follows the extension: .yaml/.yml for YAML,
anything else for JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.GetConfigPath()
	if len(args) == 1 {
		path = args[0]
	}

	if utils.FileExists(path) && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Default().SaveToFile(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}
