package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var libsCmd = &cobra.Command{
	Use:          "libs",
	Short:        "List the supported third-party libraries",
	Long:         `List the engine-bundled third-party libraries known to UnrealBuildTool, one per line.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		i, cfg, cleanup, err := newInterrogator(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		names, err := i.List(cfg.Platform, cfg.Configuration)
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Println(name)
		}

		return nil
	},
}
