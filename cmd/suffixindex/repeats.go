package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var repeatsCmd = &cobra.Command{
	Use:   "repeats [FILE]",
	Short: "Print the longest substring that occurs at least twice",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := loadText(args)
		if err != nil {
			return err
		}
		idx, err := buildIndex(text)
		if err != nil {
			return err
		}
		sub, length := idx.LongestRepeatedSubstring()
		fmt.Fprintf(cmd.OutOrStdout(), "%q %d\n", sub, length)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(repeatsCmd)
}
