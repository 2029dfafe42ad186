// Package validator is the diagnostic engine for Dockerfile text. It
// reports syntax and structural problems as positioned diagnostics without
// executing or semantically interpreting the build.
//
// A run combines three cooperating checks over the same text: per
// instruction checks on the parsed document model, an independent
// character-level structural scan honoring escape continuations, and a
// restricted JSON-array grammar check for bracketed instruction bodies.
package validator

import (
	"fmt"
	"strings"

	"github.com/docklint/docklint/command"
	"github.com/docklint/docklint/parser"
	"github.com/docklint/docklint/textdocument"
)

// Validator validates Dockerfile documents. An instance holds only its
// settings; every Validate call is self-contained, so one instance may
// validate multiple documents concurrently.
type Validator struct {
	settings Settings
}

// New creates a Validator with the given settings.
func New(settings Settings) *Validator {
	return &Validator{settings: settings}
}

// Validate checks the parsed document against the supplied keyword
// whitelist and returns diagnostics in the order they were found:
// directive resolution first, then the document-model pass, then the
// structural scan. Malformed input never fails; it is what gets reported.
func (v *Validator) Validate(keywords []string, df *parser.Dockerfile) []Diagnostic {
	run := &validation{
		doc:         df.Document,
		text:        df.Document.Text(),
		settings:    v.settings,
		keywords:    make(map[string]bool, len(keywords)),
		diagnostics: []Diagnostic{},
	}
	for _, k := range keywords {
		run.keywords[k] = true
	}

	body := run.resolveDirective(df.Directive)
	run.validateModel(df.Instructions)
	run.scan(body)
	return run.diagnostics
}

// validation is the call-scoped context of a single run.
type validation struct {
	doc         *textdocument.TextDocument
	text        string
	escape      byte
	settings    Settings
	keywords    map[string]bool
	diagnostics []Diagnostic
}

func (r *validation) add(sev Severity, code Code, rng textdocument.Range, msg string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Range:    rng,
		Severity: sev,
		Code:     code,
		Source:   Source,
		Message:  msg,
	})
}

func (r *validation) addOffsets(sev Severity, code Code, start, end int, msg string) {
	r.add(sev, code, r.doc.RangeOf(start, end), msg)
}

// resolveDirective fixes the run's escape character and returns the offset
// where instruction scanning begins. A directive value of `\` or backtick
// is honored even when the directive name itself was invalid; this matches
// the engine's documented behavior.
func (r *validation) resolveDirective(d *parser.Directive) int {
	r.escape = parser.EscapeCharacter(d)
	if d == nil {
		return 0
	}
	if d.Directive() != parser.Escape {
		r.add(SeverityError, CodeUnknownDirective, d.NameRange, fmt.Sprintf(messageUnknownDirective, d.Name))
	} else if d.Value != "\\" && d.Value != "`" && d.Value != "" {
		r.add(SeverityError, CodeInvalidEscapeDirective, d.ValueRange, fmt.Sprintf(messageInvalidEscapeDirective, d.Value))
	}
	return r.doc.OffsetAt(d.Range.End)
}

func (r *validation) validateModel(instructions []*parser.Instruction) {
	if len(instructions) == 0 {
		r.add(SeverityError, CodeNoSourceImage, textdocument.Range{}, messageNoSourceImage)
	} else if instructions[0].Keyword != command.From {
		r.add(SeverityError, CodeNoSourceImage, instructions[0].KeywordRange, messageNoSourceImage)
	}
	for _, ins := range instructions {
		r.validateInstruction(ins)
	}
}

func (r *validation) validateInstruction(ins *parser.Instruction) {
	if !r.keywords[ins.Keyword] {
		r.add(SeverityError, CodeUnknownInstruction, ins.KeywordRange, fmt.Sprintf(messageUnknownInstruction, ins.Written))
		return
	}
	if ins.Written != ins.Keyword {
		r.add(SeverityWarning, CodeLowercase, ins.KeywordRange, messageLowercase)
		return
	}

	h := handlers[ins.Keyword]
	if h.deprecated && r.settings.DeprecatedMaintainer != SettingIgnore {
		sev := SeverityWarning
		if r.settings.DeprecatedMaintainer == SettingError {
			sev = SeverityError
		}
		r.add(sev, CodeDeprecatedMaintainer, ins.KeywordRange, messageDeprecatedMaintainer)
	}
	if !r.hasArguments(ins) {
		r.add(SeverityError, CodeMissingArgument, ins.KeywordRange, messageMissingArgument)
		return
	}
	if h.rule != nil {
		r.applyRule(ins, h.rule)
	}
}

// hasArguments re-scans the raw text after the keyword. Continuations are
// skipped; a continuation that reaches end of text counts as an argument
// so that files cut off mid-continuation are not flagged.
func (r *validation) hasArguments(ins *parser.Instruction) bool {
	start, end := ins.ArgumentsOffsets()
	c := newCursor(r.text, r.escape, start, end)
	for c.more() {
		if c.splice() {
			if !c.more() {
				return true
			}
			continue
		}
		switch c.ch() {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return true
		}
	}
	return false
}

func (r *validation) applyRule(ins *parser.Instruction, rule *argumentRule) {
	args := ins.Arguments()
	if rule.singleOnly {
		if len(args) == 0 {
			return
		}
		if rule.valid != nil && !rule.valid(args[0].Value) {
			r.add(SeverityError, rule.code, args[0].Range, rule.message(args[0].Value))
		}
		if len(args) > 1 {
			r.add(SeverityError, CodeExtraArgument, args[1].Range, messageExtraArgument)
		}
		return
	}
	for _, arg := range args {
		if rule.valid != nil && !rule.valid(arg.Value) {
			r.add(SeverityError, rule.code, arg.Range, rule.message(arg.Value))
		}
	}
}

// argumentRule validates an instruction's argument tokens. With singleOnly
// set, only the first token is checked and any second token is an extra
// argument; otherwise every token is checked independently.
type argumentRule struct {
	singleOnly bool
	valid      func(string) bool
	code       Code
	message    func(string) string
}

// handler ties an instruction keyword to its document-model checks and its
// structural treatment, so the two passes share one keyword table.
type handler struct {
	deprecated bool
	volume     bool
	rule       *argumentRule
}

var handlers = map[string]handler{
	command.From:    {rule: &argumentRule{singleOnly: true}},
	command.Workdir: {rule: &argumentRule{singleOnly: true}},
	command.User:    {rule: &argumentRule{singleOnly: true}},
	command.Stopsignal: {rule: &argumentRule{
		singleOnly: true,
		valid:      validStopSignal,
		code:       CodeInvalidStopSignal,
		message:    func(string) string { return messageInvalidStopSignal },
	}},
	command.Expose: {rule: &argumentRule{
		valid:   validContainerPort,
		code:    CodeInvalidPort,
		message: func(port string) string { return fmt.Sprintf(messageInvalidPort, port) },
	}},
	command.Maintainer: {deprecated: true},
	command.Volume:     {volume: true},
}

// validStopSignal accepts SIG-prefixed names and plain signal numbers.
func validStopSignal(value string) bool {
	if strings.HasPrefix(value, "SIG") {
		return true
	}
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// validContainerPort accepts single ports and ranges like 8080-8090.
func validContainerPort(value string) bool {
	if value == "" || value[0] == '-' || value[len(value)-1] == '-' {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return true
}
