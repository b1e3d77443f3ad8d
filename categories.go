package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordplay/internal/words"
)

var flagShowWords bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List word categories",
	Long:  `Shows every category in the word list with its word count.`,
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&flagShowWords, "words", false, "Also print the words (spoilers)")
}

func runCategories(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := words.Load(cfg.WordsFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cats := catalog.Categories()
	maxLen := len("Category")
	for _, c := range cats {
		if len(c.Name) > maxLen {
			maxLen = len(c.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Category", "Words")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "--------", "-----")
	for _, c := range cats {
		if flagShowWords {
			fmt.Fprintf(out, "  %-*s  %s\n", maxLen, c.Name, strings.Join(c.Words, ", "))
			continue
		}
		fmt.Fprintf(out, "  %-*s  %d\n", maxLen, c.Name, len(c.Words))
	}
	return nil
}
