package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonpas/ue4cli/internal/interrogator"
)

var cxxflagsCmd = &cobra.Command{
	Use:          "cxxflags <libraries...>",
	Short:        "Print compiler flags for the specified third-party libraries",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runFlags((*interrogator.LibraryDetails).CompilerFlags),
}

var ldflagsCmd = &cobra.Command{
	Use:          "ldflags <libraries...>",
	Short:        "Print linker flags for the specified third-party libraries",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runFlags((*interrogator.LibraryDetails).LinkerFlags),
}

var cmakeflagsCmd = &cobra.Command{
	Use:          "cmakeflags <libraries...>",
	Short:        "Print CMake flags for the specified third-party libraries",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runFlags((*interrogator.LibraryDetails).CMakeFlags),
}

// runFlags interrogates the requested libraries and prints the formatted
// flags on a single line
func runFlags(format func(*interrogator.LibraryDetails) []string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		i, cfg, cleanup, err := newInterrogator(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		details, err := i.Interrogate(cfg.Platform, cfg.Configuration, args, nil)
		if err != nil {
			return err
		}

		fmt.Println(strings.Join(format(details), " "))

		return nil
	}
}
