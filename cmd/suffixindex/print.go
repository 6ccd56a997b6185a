package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [FILE]",
	Short: "List the suffixes of the text in sorted order",
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
		for i, pos := range idx.SuffixArray() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%s\n", i, pos, idx.Suffix(i))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
