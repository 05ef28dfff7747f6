package cli

import (
	"flag"

	"github.com/spf13/cobra"

	spritecutter "github.com/menta2k/sprite-cutter"
)

// Version is set at build time via ldflags.
var Version = spritecutter.Version

var rootCmd = &cobra.Command{
	Use:   "sprite-cutter",
	Short: "Split spritesheets into individual frames",
	Long: `sprite-cutter finds the frames of a spritesheet from its pixels alone.
No grid size or atlas file is needed: the background color is inferred from
the image corners, split lines come from transparent runs and sharp color
changes, and every frame is written as a PNG with the background cleared.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog complains when the standard flag set was never parsed.
		if !flag.Parsed() {
			return flag.CommandLine.Parse(nil)
		}
		return nil
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("sprite-cutter version {{.Version}}\n")

	// Expose glog's -v, -logtostderr and friends on every command.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	_ = flag.Set("logtostderr", "true")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
