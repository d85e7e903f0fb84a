package logic

import (
	"strings"

	"golang.org/x/text/cases"

	"poemdeck/internal/domain"
)

// Fold case-folds s for case-insensitive comparison
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Match scans poems in order and annotates each hit with the first field that
// contains the query: title, then author, then any line. A blank query matches nothing.
func Match(poems []domain.Poem, query string) []domain.SearchResult {
	needle := Fold(strings.TrimSpace(query))
	if needle == "" {
		return []domain.SearchResult{}
	}

	results := []domain.SearchResult{}
	for i, p := range poems {
		kind, ok := matchKind(p, needle)
		if !ok {
			continue
		}
		results = append(results, domain.SearchResult{
			Poem:        p,
			SourceIndex: i,
			MatchKind:   kind,
		})
	}
	return results
}

func matchKind(p domain.Poem, needle string) (domain.MatchKind, bool) {
	if strings.Contains(Fold(p.Title), needle) {
		return domain.MatchTitle, true
	}
	if strings.Contains(Fold(p.Author), needle) {
		return domain.MatchAuthor, true
	}
	for _, line := range p.Lines {
		if strings.Contains(Fold(line), needle) {
			return domain.MatchContent, true
		}
	}
	return 0, false
}
