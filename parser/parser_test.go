package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docklint/docklint/parser"
	"github.com/docklint/docklint/textdocument"
)

func rangeAt(startLine, startChar, endLine, endChar int) textdocument.Range {
	return textdocument.Range{
		Start: textdocument.Position{Line: startLine, Character: startChar},
		End:   textdocument.Position{Line: endLine, Character: endChar},
	}
}

func TestParseDirective(t *testing.T) {
	t.Run("escape backtick", func(t *testing.T) {
		df := parser.Parse("#escape=`\nFROM node\n")
		require.NotNil(t, df.Directive)
		require.Equal(t, "escape", df.Directive.Name)
		require.Equal(t, "`", df.Directive.Value)
		require.Equal(t, byte('`'), df.EscapeCharacter)
		require.Equal(t, rangeAt(0, 1, 0, 7), df.Directive.NameRange)
		require.Equal(t, rangeAt(0, 8, 0, 9), df.Directive.ValueRange)
	})

	t.Run("spaces around name and value", func(t *testing.T) {
		df := parser.Parse("#  escape  =  `  \nFROM node\n")
		require.NotNil(t, df.Directive)
		require.Equal(t, "escape", df.Directive.Name)
		require.Equal(t, "`", df.Directive.Value)
	})

	t.Run("plain comment is not a directive", func(t *testing.T) {
		df := parser.Parse("# just a comment\nFROM node\n")
		require.Nil(t, df.Directive)
		require.Equal(t, byte('\\'), df.EscapeCharacter)
	})

	t.Run("directive name is kept as written", func(t *testing.T) {
		df := parser.Parse("# Escape=`\nFROM node\n")
		require.NotNil(t, df.Directive)
		require.Equal(t, "Escape", df.Directive.Name)
		require.Equal(t, "escape", df.Directive.Directive())
	})

	t.Run("only line zero", func(t *testing.T) {
		df := parser.Parse("FROM node\n#escape=`\n")
		require.Nil(t, df.Directive)
	})

	t.Run("unknown name with escape value", func(t *testing.T) {
		// the value is honored even under an unrecognized name
		df := parser.Parse("# foo=`\nFROM node\n")
		require.NotNil(t, df.Directive)
		require.Equal(t, byte('`'), df.EscapeCharacter)
	})
}

func TestParseInstructions(t *testing.T) {
	df := parser.Parse("FROM node\nRUN echo hello\n")
	require.Len(t, df.Instructions, 2)

	from := df.Instructions[0]
	require.Equal(t, "FROM", from.Keyword)
	require.Equal(t, "FROM", from.Written)
	require.Equal(t, rangeAt(0, 0, 0, 4), from.KeywordRange)
	require.Equal(t, rangeAt(0, 0, 0, 9), from.Range)

	run := df.Instructions[1]
	require.Equal(t, "RUN", run.Keyword)
	require.Equal(t, rangeAt(1, 0, 1, 3), run.KeywordRange)

	args := run.Arguments()
	require.Len(t, args, 2)
	require.Equal(t, "echo", args[0].Value)
	require.Equal(t, rangeAt(1, 4, 1, 8), args[0].Range)
	require.Equal(t, "hello", args[1].Value)
	require.Equal(t, rangeAt(1, 9, 1, 14), args[1].Range)
}

func TestParseKeepsWrittenCase(t *testing.T) {
	df := parser.Parse("from node\n")
	require.Len(t, df.Instructions, 1)
	require.Equal(t, "FROM", df.Instructions[0].Keyword)
	require.Equal(t, "from", df.Instructions[0].Written)
}

func TestParseSkipsComments(t *testing.T) {
	df := parser.Parse("# header\nFROM node\n# trailing\n")
	require.Len(t, df.Instructions, 1)
	require.Equal(t, "FROM", df.Instructions[0].Keyword)
}

func TestParseContinuations(t *testing.T) {
	t.Run("argument continues on next line", func(t *testing.T) {
		df := parser.Parse("RUN echo \\\n    hello\n")
		args := df.Instructions[0].Arguments()
		require.Len(t, args, 2)
		require.Equal(t, "hello", args[1].Value)
		require.Equal(t, 1, args[1].Range.Start.Line)
	})

	t.Run("continuation inside a token", func(t *testing.T) {
		df := parser.Parse("RUN he\\\nllo\n")
		args := df.Instructions[0].Arguments()
		require.Len(t, args, 1)
		require.Equal(t, "hello", args[0].Value)
		require.Equal(t, rangeAt(0, 4, 1, 3), args[0].Range)
	})

	t.Run("continuation inside the keyword", func(t *testing.T) {
		df := parser.Parse("RU\\\nN echo hello\n")
		require.Len(t, df.Instructions, 1)
		require.Equal(t, "RUN", df.Instructions[0].Keyword)
	})

	t.Run("comment line inside a continuation", func(t *testing.T) {
		df := parser.Parse("RUN echo \\\n# note\n    hello\n")
		require.Len(t, df.Instructions, 1)
		args := df.Instructions[0].Arguments()
		require.Len(t, args, 2)
		require.Equal(t, "hello", args[1].Value)
	})

	t.Run("empty line inside a continuation", func(t *testing.T) {
		df := parser.Parse("RUN echo \\\n\n    hello\n")
		require.Len(t, df.Instructions, 1)
		require.Len(t, df.Instructions[0].Arguments(), 2)
	})

	t.Run("backtick escape directive", func(t *testing.T) {
		df := parser.Parse("#escape=`\nRUN echo `\nhello\n")
		require.Len(t, df.Instructions, 1)
		require.Len(t, df.Instructions[0].Arguments(), 2)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		df := parser.Parse("RUN echo \\\r\nhello\r\n")
		require.Len(t, df.Instructions, 1)
		args := df.Instructions[0].Arguments()
		require.Len(t, args, 2)
		require.Equal(t, "hello", args[1].Value)
	})
}

func TestParseArgumentsOffsets(t *testing.T) {
	df := parser.Parse("FROM node\n")
	start, end := df.Instructions[0].ArgumentsOffsets()
	require.Equal(t, 4, start)
	require.Equal(t, 9, end)
}

func TestParseNeverFails(t *testing.T) {
	for _, text := range []string{
		"",
		"\\",
		"#",
		"#escape",
		"FROM",
		"FROM \\",
		"VOLUME [\"/unterminated",
		"\x00\x01\x02",
	} {
		require.NotPanics(t, func() { parser.Parse(text) })
	}
}
