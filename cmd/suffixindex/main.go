package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viniciusth/suffixindex"
)

var (
	inlineText string
	foldCase   bool
	normalize  bool
	noLCP      bool
)

var rootCmd = &cobra.Command{
	Use:   "suffixindex",
	Short: "suffixindex searches inside a text with a suffix array",
	Long: `suffixindex builds a suffix array over a text and answers substring
queries against it: sorted suffix listings, exact pattern positions, the
longest repeated substring, and the longest substring common to two texts.`,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inlineText, "text", "t", "", "index this text instead of reading a file")
	rootCmd.PersistentFlags().BoolVar(&foldCase, "fold", false, "lowercase the text and patterns before indexing")
	rootCmd.PersistentFlags().BoolVar(&normalize, "normalize", false, "NFC-normalize the text and patterns before indexing")
	rootCmd.PersistentFlags().BoolVar(&noLCP, "no-lcp", false, "skip the LCP structures, trading query speed for memory")
}

// Reads the text to index: --text wins, then the FILE argument, then stdin.
// A FILE of "-" also means stdin.
func loadText(args []string) ([]byte, error) {
	if inlineText != "" {
		return []byte(inlineText), nil
	}
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func buildIndex(text []byte) (*suffixindex.SuffixIndex, error) {
	b := suffixindex.NewBuilder(text)
	if foldCase {
		b = b.FoldCase()
	}
	if normalize {
		b = b.Normalize()
	}
	if noLCP {
		b = b.SkipLCP()
	}
	return b.Build()
}
