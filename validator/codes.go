package validator

// Code identifies the kind of a diagnostic.
type Code int

const (
	CodeDefault Code = iota
	CodeLowercase
	CodeExtraArgument
	CodeNoSourceImage
	CodeMissingArgument
	CodeInvalidEscapeDirective
	CodeInvalidPort
	CodeInvalidStopSignal
	CodeUnknownDirective
	CodeUnknownInstruction
	CodeDeprecatedMaintainer
	CodeUnexpectedToken
)

var codeNames = map[Code]string{
	CodeDefault:                "Default",
	CodeLowercase:              "Lowercase",
	CodeExtraArgument:          "ExtraArgument",
	CodeNoSourceImage:          "NoSourceImage",
	CodeMissingArgument:        "MissingArgument",
	CodeInvalidEscapeDirective: "InvalidEscapeDirective",
	CodeInvalidPort:            "InvalidPort",
	CodeInvalidStopSignal:      "InvalidStopSignal",
	CodeUnknownDirective:       "UnknownDirective",
	CodeUnknownInstruction:     "UnknownInstruction",
	CodeDeprecatedMaintainer:   "DeprecatedMaintainer",
	CodeUnexpectedToken:        "UnexpectedToken",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON serializes a code by its stable name.
func (c Code) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// Diagnostic message templates. Wording is fixed; a single substitution
// slot where noted.
const (
	messageUnknownDirective       = "Unknown directive: %s"
	messageInvalidEscapeDirective = "invalid ESCAPE '%s'. Must be ` or \\"
	messageNoSourceImage          = "No source image provided with `FROM`"
	messageInvalidPort            = "Invalid containerPort: %s"
	messageInvalidStopSignal      = "Invalid stop signal"
	messageExtraArgument          = "Instruction has an extra argument"
	messageMissingArgument        = "Instruction has no arguments"
	messageUnknownInstruction     = "Unknown instruction: %s"
	messageLowercase              = "Instructions should be written in uppercase letters"
	messageDeprecatedMaintainer   = "MAINTAINER has been deprecated"
	messageUnexpectedToken        = "Unexpected token"
)
