package domain

import (
	"strings"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

const (
	blockCommentStart = "/*"
	blockCommentEnd   = "*/"
	lineCommentStart  = "//"
	directivePrefix   = '#'
	lineContinuation  = '\\'
)

// TraceFunc receives the classification reasoning for the current line.
type TraceFunc func(status m.TraceStatus, text string)

// LineClassifier strips comments and preprocessor directives from source
// lines. It carries its state from one line to the next, so a classifier
// must only ever see the lines of one file, in order.
type LineClassifier struct {
	state m.ScanState
	trace TraceFunc
}

// NewLineClassifier returns a classifier in the code state. trace may be nil.
func NewLineClassifier(trace TraceFunc) *LineClassifier {
	if trace == nil {
		trace = func(m.TraceStatus, string) {}
	}

	return &LineClassifier{state: m.StateCode, trace: trace}
}

// State returns the state the next line will start in.
func (c *LineClassifier) State() m.ScanState {
	return c.state
}

// Classify consumes one raw line and returns the code left to scan for
// keywords, which may be empty.
func (c *LineClassifier) Classify(raw string) string {
	line := collapseBlockComments(strings.TrimSpace(raw))

	if c.state == m.StatePreprocessor {
		return c.directive(line)
	}

	switch c.state {
	case m.StateCode:
		if begin := strings.Index(line, blockCommentStart); begin != -1 {
			c.trace(m.TraceComment, line)
			line = strings.TrimSpace(line[:begin])
			c.trace(m.TraceLeadingCode, line)
			c.state = m.StateBlockComment
		}
	case m.StateBlockComment:
		end := strings.Index(line, blockCommentEnd)
		if end == -1 {
			c.trace(m.TraceComment, line)
			return ""
		}

		c.trace(m.TraceComment, line)
		line = strings.TrimSpace(line[end+len(blockCommentEnd):])

		if begin := strings.Index(line, blockCommentStart); begin != -1 {
			line = strings.TrimSpace(line[:begin])
			c.trace(m.TraceEnclosedCode, line)
		} else {
			c.trace(m.TraceTrailingCode, line)
			c.state = m.StateCode
		}
	}

	if line == "" {
		return ""
	}

	if c.state == m.StateCode && line[0] == directivePrefix {
		return c.directive(line)
	}

	if begin := strings.Index(line, lineCommentStart); begin != -1 {
		c.trace(m.TraceComment, line)
		line = strings.TrimSpace(line[:begin])
		c.trace(m.TraceLeadingCode, line)
	}

	return line
}

// directive swallows a preprocessor line. The directive continues on the
// next line only if this one ends with a backslash. A continuation line that
// is blank, or empty once its comments are collapsed, has no trailing
// backslash and so ends the directive: the following line is code again.
func (c *LineClassifier) directive(line string) string {
	c.trace(m.TracePreprocessor, line)

	if line != "" && line[len(line)-1] == lineContinuation {
		c.state = m.StatePreprocessor
	} else {
		c.state = m.StateCode
	}

	return ""
}

// collapseBlockComments replaces every /* */ span that opens and closes on
// the line with a single space. The closing */ must start after the /*.
func collapseBlockComments(line string) string {
	for {
		begin := strings.Index(line, blockCommentStart)
		if begin == -1 {
			return line
		}

		offset := begin + len(blockCommentStart)

		end := strings.Index(line[offset:], blockCommentEnd)
		if end == -1 {
			return line
		}

		rest := line[offset+end+len(blockCommentEnd):]
		line = strings.TrimSpace(strings.TrimSpace(line[:begin]) + " " + strings.TrimSpace(rest))
	}
}
