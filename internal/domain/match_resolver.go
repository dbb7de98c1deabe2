package domain

import (
	"fmt"
	"sort"
	"strings"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// ResolveMatches finds every keyword of table in code and reduces the
// occurrences to an ordered, non-overlapping sequence. A keyword that lies
// inside a longer keyword occurrence is dropped; two occurrences that only
// partially overlap cannot be told apart and yield a KindAmbiguousMatch
// diagnostic with Line left at zero for the caller to fill in.
func ResolveMatches(code string, table *KeywordTable) ([]m.Match, error) {
	if code == "" {
		return nil, nil
	}

	candidates := findCandidates(code, table.Keywords())
	if len(candidates) == 0 {
		return nil, nil
	}

	resolved := make([]m.Match, 0, len(candidates))
	current := candidates[0]

	for _, next := range candidates[1:] {
		switch {
		case next.Offset >= current.Offset && next.End() <= current.End():
			continue
		case current.End() <= next.Offset:
			resolved = append(resolved, current)
			current = next
		default:
			return nil, &m.Diagnostic{
				Kind:    m.KindAmbiguousMatch,
				Message: fmt.Sprintf("ambiguous markers %s and %s overlap in %q, check for a typo", current.Text, next.Text, code),
				Text:    code,
			}
		}
	}

	return append(resolved, current), nil
}

// findCandidates returns one candidate per start offset, the longest keyword
// found there, sorted by offset. Equal lengths are broken by lexical order.
func findCandidates(code string, keywords []string) []m.Match {
	byOffset := make(map[int]string)

	for _, keyword := range keywords {
		for start := 0; start < len(code); {
			index := strings.Index(code[start:], keyword)
			if index == -1 {
				break
			}

			offset := start + index
			if best, ok := byOffset[offset]; !ok || longerKeyword(keyword, best) {
				byOffset[offset] = keyword
			}

			start = offset + 1
		}
	}

	candidates := make([]m.Match, 0, len(byOffset))
	for offset, keyword := range byOffset {
		candidates = append(candidates, m.Match{Offset: offset, Text: keyword})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Offset < candidates[j].Offset
	})

	return candidates
}

func longerKeyword(candidate, best string) bool {
	if len(candidate) != len(best) {
		return len(candidate) > len(best)
	}

	return candidate < best
}
