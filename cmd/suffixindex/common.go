package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viniciusth/suffixindex"
)

var commonCmd = &cobra.Command{
	Use:   "common FILE_A FILE_B",
	Short: "Print the longest substring the two files share",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		b, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		sub, length, err := suffixindex.LongestCommonSubstring(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%q %d\n", sub, length)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commonCmd)
}
