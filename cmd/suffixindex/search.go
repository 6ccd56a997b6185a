package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countOnly bool

var searchCmd = &cobra.Command{
	Use:   "search PATTERN [FILE]",
	Short: "Print every position where PATTERN occurs in the text",
	Long: `Prints the positions where PATTERN occurs, one per line, in suffix-array
order rather than position order.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := loadText(args[1:])
		if err != nil {
			return err
		}
		idx, err := buildIndex(text)
		if err != nil {
			return err
		}
		if countOnly {
			fmt.Fprintln(cmd.OutOrStdout(), idx.Count([]byte(args[0])))
			return nil
		}
		for _, pos := range idx.Search([]byte(args[0])) {
			fmt.Fprintln(cmd.OutOrStdout(), pos)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print only the number of occurrences")
	rootCmd.AddCommand(searchCmd)
}
