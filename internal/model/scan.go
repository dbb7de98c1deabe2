package model

// ScanState is the line classifier state carried from one line to the next.
type ScanState int

const (
	// StateCode means the next line starts in ordinary code.
	StateCode ScanState = iota
	// StateBlockComment means the next line starts inside a /* */ comment.
	StateBlockComment
	// StatePreprocessor means the next line continues a preprocessor directive.
	StatePreprocessor
)

func (s ScanState) String() string {
	switch s {
	case StateCode:
		return "code"
	case StateBlockComment:
		return "block comment"
	case StatePreprocessor:
		return "preprocessor"
	default:
		return "unknown"
	}
}

// Match is one resolved keyword occurrence. Offset is relative to the
// residual code of the line, not to the raw line.
type Match struct {
	Offset int
	Text   string
}

// End returns the offset one past the last byte of the match.
func (mt Match) End() int {
	return mt.Offset + len(mt.Text)
}

// StackFrame is an opener still waiting for its closer.
type StackFrame struct {
	Keyword string
	Line    int
}

// TraceStatus labels a step of the line classification reasoning.
type TraceStatus string

// Trace statuses reported while scanning.
const (
	TraceComment       TraceStatus = "comment"
	TraceLeadingCode   TraceStatus = "leading code"
	TraceTrailingCode  TraceStatus = "trailing code"
	TraceEnclosedCode  TraceStatus = "enclosed code"
	TracePreprocessor  TraceStatus = "preprocessor"
	TraceOpeningMarker TraceStatus = "opening marker"
	TraceClosingMarker TraceStatus = "closing marker"
)

// TraceEvent describes one classification decision for a line.
type TraceEvent struct {
	Path   Path
	Line   int
	Status TraceStatus
	Text   string
}
