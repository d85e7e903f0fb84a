package main

import (
	"fmt"
	"strings"

	"poemdeck/internal/domain"
	"poemdeck/internal/logic"
	"poemdeck/internal/ui/views"
)

// formatList renders "index. title (dynasty · author)" lines, 1-based
func formatList(store logic.Collection) string {
	var b strings.Builder
	for i := 0; i < store.Count(); i++ {
		poem, _ := store.Get(i)
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, poem.Title, poem.Byline())
	}
	return b.String()
}

// formatResults renders search results with their match kind
func formatResults(results []domain.SearchResult) string {
	if len(results) == 0 {
		return views.NoResultsText + "\n"
	}
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%d. %s (%s) [%s]\n", r.SourceIndex+1, r.Poem.Title, r.Poem.Byline(), r.MatchKind)
	}
	return b.String()
}
