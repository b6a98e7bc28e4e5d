package cli

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search available packages",
		Long: `Search the repository index by package name, description and
keywords. Results are ranked by fuzzy match quality.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of results to show")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, limit int) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	idx := app.cache.Fetch(cmd.Context(), app.store.Repository())
	if len(idx) == 0 {
		fmt.Println("No packages available")
		return nil
	}

	names := idx.Names()
	haystack := make([]string, len(names))
	for i, name := range names {
		record := idx[name]
		haystack[i] = name + " " + record.Description + " " + strings.Join(record.Keywords, " ")
	}

	matches := fuzzy.Find(query, haystack)
	if len(matches) == 0 {
		fmt.Printf("No packages matching %q\n", query)
		return nil
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	fmt.Printf("%-30s %-15s %s\n", "PACKAGE NAME", "VERSION", "DESCRIPTION")
	fmt.Println(strings.Repeat("-", 70))
	for _, match := range matches {
		name := names[match.Index]
		record := idx[name]
		fmt.Printf("%-30s %-15s %s\n", name, record.Version, record.Description)
	}

	return nil
}
