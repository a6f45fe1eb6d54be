package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonpas/ue4cli/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "ue4",
	Short:        "Unreal Engine third-party library interrogator",
	Long:         `Query UnrealBuildTool for the build flags of engine-bundled third-party libraries.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	rootCmd.PersistentFlags().String("engine-root", "", "Root directory of the Unreal Engine installation")
	rootCmd.PersistentFlags().StringP("platform", "p", "", "Target platform (e.g., Linux, Win64, Mac)")
	rootCmd.PersistentFlags().StringP("configuration", "c", "", "Build configuration (Debug, DebugGame, Development, Shipping, Test)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the interrogation cache")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(libsCmd)
	rootCmd.AddCommand(cxxflagsCmd)
	rootCmd.AddCommand(ldflagsCmd)
	rootCmd.AddCommand(cmakeflagsCmd)
	rootCmd.AddCommand(cacheCmd)
}
