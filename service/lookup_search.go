// service/lookup_search.go
package service

import (
	"sort"
	"strings"
)

// Match ranks, best first. Ties between equally ranked items are broken by
// original collection order.
const (
	rankExact     = 0
	rankPrefix    = 1
	rankSubstring = 2
	rankNone      = -1
)

func matchRank(candidate, query string) int {
	c := strings.ToLower(candidate)
	q := strings.ToLower(query)
	switch {
	case c == q:
		return rankExact
	case strings.HasPrefix(c, q):
		return rankPrefix
	case strings.Contains(c, q):
		return rankSubstring
	default:
		return rankNone
	}
}

type rankedMatch struct {
	index int
	rank  int
}

// rankIndexes returns the indexes of items matching query, ordered
// exact-first, then prefix, then substring, ties by original index, capped
// at max (max <= 0 means unbounded).
func rankIndexes(items []string, query string, max int) []int {
	var matches []rankedMatch
	for i, item := range items {
		if r := matchRank(item, query); r != rankNone {
			matches = append(matches, rankedMatch{index: i, rank: r})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].index < matches[j].index
	})
	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}
	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.index
	}
	return indexes
}

func rankStrings(items []string, query string, max int) []string {
	indexes := rankIndexes(items, query, max)
	out := make([]string, len(indexes))
	for i, idx := range indexes {
		out[i] = items[idx]
	}
	return out
}
