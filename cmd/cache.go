package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonpas/ue4cli/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the interrogation cache",
}

var cacheClearCmd = &cobra.Command{
	Use:          "clear",
	Short:        "Remove all cached interrogation data",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cache.New("")
		if err != nil {
			return err
		}
		defer c.Close()

		count, err := c.Stats()
		if err != nil {
			return err
		}

		if err := c.Clear(); err != nil {
			return err
		}

		fmt.Printf("Cleared %d cached entries\n", count)

		return nil
	},
}

var cachePathCmd = &cobra.Command{
	Use:          "path",
	Short:        "Print the cache directory path",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cache.Dir("")
		if err != nil {
			return err
		}

		fmt.Println(dir)

		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePathCmd)
}
