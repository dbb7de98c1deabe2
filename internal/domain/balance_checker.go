package domain

import (
	"fmt"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// BalanceChecker pairs openers with closers across the lines of one file.
type BalanceChecker struct {
	table *KeywordTable
	stack []m.StackFrame
}

// NewBalanceChecker returns a checker with an empty stack.
func NewBalanceChecker(table *KeywordTable) *BalanceChecker {
	return &BalanceChecker{table: table}
}

// Open returns the openers still waiting for a closer, oldest first.
func (b *BalanceChecker) Open() []m.StackFrame {
	return b.stack
}

// Feed processes the matches of line left to right and returns the first
// violation, if any. Every match is a keyword of the table, so anything that
// is not an opener is a closer.
func (b *BalanceChecker) Feed(line int, matches []m.Match) *m.Diagnostic {
	for _, match := range matches {
		if b.table.IsOpener(match.Text) {
			b.stack = append(b.stack, m.StackFrame{Keyword: match.Text, Line: line})
			continue
		}

		if len(b.stack) == 0 {
			return &m.Diagnostic{
				Line:    line,
				Kind:    m.KindLonelyCloser,
				Message: fmt.Sprintf("lonely end marker %s", match.Text),
			}
		}

		top := b.stack[len(b.stack)-1]
		if closer, _ := b.table.CloserFor(top.Keyword); closer != match.Text {
			return &m.Diagnostic{
				Line:    top.Line,
				Kind:    m.KindMismatchedPair,
				Message: fmt.Sprintf("%s completed by %s", top.Keyword, match.Text),
			}
		}

		b.stack = b.stack[:len(b.stack)-1]
	}

	return nil
}

// Finish reports the innermost opener left open at end of file.
func (b *BalanceChecker) Finish() *m.Diagnostic {
	if len(b.stack) == 0 {
		return nil
	}

	top := b.stack[len(b.stack)-1]

	return &m.Diagnostic{
		Line:    top.Line,
		Kind:    m.KindUnterminatedOpener,
		Message: fmt.Sprintf("%s lacks end marker", top.Keyword),
	}
}
