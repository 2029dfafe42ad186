package validator

import (
	"github.com/docklint/docklint/textdocument"
)

// Source is the tag carried by every diagnostic this engine produces.
const Source = "docklint"

// Severity of a diagnostic. Values follow the editor-protocol convention.
type Severity int

const (
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// Diagnostic is a positioned, coded finding. Immutable once created;
// output lists keep insertion order, not position order.
type Diagnostic struct {
	Range    textdocument.Range `json:"range"`
	Severity Severity           `json:"severity"`
	Code     Code               `json:"code"`
	Source   string             `json:"source"`
	Message  string             `json:"message"`
}
