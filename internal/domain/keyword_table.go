package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// ErrConfig marks a syntax file that cannot be turned into a keyword table.
var ErrConfig = errors.New("invalid syntax configuration")

// KeywordTable classifies keywords as openers or closers. It is immutable
// once built and safe for concurrent use.
type KeywordTable struct {
	closerFor map[string]string
	closers   map[string]struct{}
	keywords  []string
}

// NewKeywordTable builds a table from an opener -> closer mapping.
func NewKeywordTable(pairs map[string]string) (*KeywordTable, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no keyword pairs defined", ErrConfig)
	}

	table := &KeywordTable{
		closerFor: make(map[string]string, len(pairs)),
		closers:   make(map[string]struct{}, len(pairs)),
	}

	for opener, closer := range pairs {
		if strings.TrimSpace(opener) == "" || strings.TrimSpace(closer) == "" {
			return nil, fmt.Errorf("%w: empty keyword in pair %q -> %q", ErrConfig, opener, closer)
		}

		table.closerFor[opener] = closer
		table.closers[closer] = struct{}{}
	}

	for closer := range table.closers {
		if _, ok := table.closerFor[closer]; ok {
			return nil, fmt.Errorf("%w: %q is both an opening and a closing keyword", ErrConfig, closer)
		}
	}

	table.keywords = make([]string, 0, len(table.closerFor)+len(table.closers))
	for opener := range table.closerFor {
		table.keywords = append(table.keywords, opener)
	}

	for closer := range table.closers {
		table.keywords = append(table.keywords, closer)
	}

	sort.Strings(table.keywords)

	return table, nil
}

// Keywords returns every opener and closer in lexical order.
func (t *KeywordTable) Keywords() []string {
	return t.keywords
}

// IsOpener reports whether keyword opens a region.
func (t *KeywordTable) IsOpener(keyword string) bool {
	_, ok := t.closerFor[keyword]
	return ok
}

// IsCloser reports whether keyword closes a region.
func (t *KeywordTable) IsCloser(keyword string) bool {
	_, ok := t.closers[keyword]
	return ok
}

// CloserFor returns the closer configured for opener.
func (t *KeywordTable) CloserFor(opener string) (string, bool) {
	closer, ok := t.closerFor[opener]
	return closer, ok
}

// Pairs returns the configured pairs sorted by opener.
func (t *KeywordTable) Pairs() []m.Pair {
	pairs := make([]m.Pair, 0, len(t.closerFor))
	for opener, closer := range t.closerFor {
		pairs = append(pairs, m.Pair{Opener: opener, Closer: closer})
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Opener < pairs[j].Opener
	})

	return pairs
}
