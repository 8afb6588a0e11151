package service

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/fittrack/internal/domain"
)

// SearchResult is one plan item matched by a query
type SearchResult struct {
	Kind  domain.ItemKind
	ID    string
	Name  string
	Done  bool
	Score int // lower is better
}

// SearchPlan ranks the plan's exercises and meals against query.
// Items that do not fuzzy-match at all are left out.
func SearchPlan(plan domain.DayPlan, query string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var items []SearchResult
	for _, e := range plan.Exercises {
		items = append(items, SearchResult{Kind: domain.KindExercise, ID: e.ID, Name: e.Name, Done: e.Completed})
	}
	for _, m := range plan.Meals {
		items = append(items, SearchResult{Kind: domain.KindMeal, ID: m.ID, Name: m.Name, Done: m.Completed})
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	matches := fuzzy.RankFindFold(query, names)

	results := make([]SearchResult, 0, len(matches))
	for _, match := range matches {
		r := items[match.OriginalIndex]
		r.Score = calculateMatchScore(strings.ToLower(r.Name), query)
		results = append(results, r)
	}

	// Sort by score (lower is better), then by name for stable output
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Name < results[j].Name
	})

	return results
}

// calculateMatchScore calculates a match score for ranking
// Lower score = better match
func calculateMatchScore(name, query string) int {
	// Exact match is best
	if name == query {
		return 0
	}

	// Prefix match is very good
	if strings.HasPrefix(name, query) {
		return 10
	}

	// Word prefix, e.g. "press" in "bench press"
	for _, word := range strings.Fields(name) {
		if strings.HasPrefix(word, query) {
			return 20
		}
	}

	// Contains match is good
	if strings.Contains(name, query) {
		return 50
	}

	return 100 + fuzzy.LevenshteinDistance(query, name)
}
