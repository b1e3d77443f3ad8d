package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordplay/internal/quotes"
)

var flagAllQuotes bool

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a random inspirational quote",
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().BoolVar(&flagAllQuotes, "all", false, "Print every quote instead of one")
}

func runQuote(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	book, err := quotes.Load(cfg.QuotesFile)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagAllQuotes {
		for _, q := range book.All() {
			fmt.Fprintln(out, q)
		}
		return nil
	}
	fmt.Fprintln(out, book.Inspire())
	return nil
}
