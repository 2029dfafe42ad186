package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/morikuni/aec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/docklint/docklint/command"
	"github.com/docklint/docklint/parser"
	"github.com/docklint/docklint/util/suggest"
	"github.com/docklint/docklint/validator"
)

func lint(clicontext *cli.Context) error {
	if clicontext.NArg() != 1 {
		return errors.New("requires exactly one PATH argument (use - for stdin)")
	}
	path := clicontext.Args().First()

	text, err := readInput(path)
	if err != nil {
		return err
	}
	logrus.Debugf("read %d bytes from %s", len(text), path)

	settings := validator.Settings{}
	if fp := clicontext.GlobalString("config"); fp != "" {
		c, err := loadConfigFile(fp)
		if err != nil {
			return err
		}
		if settings, err = c.settings(); err != nil {
			return err
		}
	}

	df := parser.Parse(text)
	diagnostics := validator.New(settings).Validate(command.Commands, df)
	logrus.Debugf("%d diagnostics for %s", len(diagnostics), path)

	switch format := clicontext.GlobalString("format"); format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(diagnostics); err != nil {
			return err
		}
	case "text":
		printDiagnostics(os.Stdout, path, df, diagnostics, !clicontext.GlobalBool("no-color"))
	default:
		return errors.Errorf("unknown format %q", format)
	}

	errs := 0
	for _, d := range diagnostics {
		if d.Severity == validator.SeverityError {
			errs++
		}
	}
	if errs > 0 {
		return errors.Errorf("found %d error(s)", errs)
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(b), nil
}

func printDiagnostics(w io.Writer, path string, df *parser.Dockerfile, diagnostics []validator.Diagnostic, color bool) {
	for _, d := range diagnostics {
		msg := d.Message
		if d.Code == validator.CodeUnknownInstruction {
			if hint := unknownKeywordHint(df, d); hint != "" {
				msg += " " + hint
			}
		}
		fmt.Fprintf(w, "%s:%d:%d: %s: %s [%s]\n",
			path, d.Range.Start.Line+1, d.Range.Start.Character+1,
			severityLabel(d.Severity, color), msg, d.Code)
	}
}

// unknownKeywordHint suggests a known instruction for the keyword an
// UnknownInstruction diagnostic points at.
func unknownKeywordHint(df *parser.Dockerfile, d validator.Diagnostic) string {
	for _, ins := range df.Instructions {
		if ins.KeywordRange == d.Range {
			if match, ok := suggest.Search(ins.Written, command.Commands, false); ok {
				return fmt.Sprintf("(did you mean %s?)", match)
			}
			return ""
		}
	}
	return ""
}

func severityLabel(sev validator.Severity, color bool) string {
	label := sev.String()
	if !color {
		return label
	}
	switch sev {
	case validator.SeverityError:
		return aec.RedF.Apply(label)
	case validator.SeverityWarning:
		return aec.YellowF.Apply(label)
	}
	return label
}
