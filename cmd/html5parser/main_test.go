package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/dpotapov/html5parser/token"
	"github.com/stretchr/testify/assert"
)

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("HTML5PARSER_LOG", "debug")
	assert.Equal(t, slog.LevelDebug, logLevelFromEnv())

	t.Setenv("HTML5PARSER_LOG", "warn")
	assert.Equal(t, slog.LevelWarn, logLevelFromEnv())

	t.Setenv("HTML5PARSER_LOG", "error")
	assert.Equal(t, slog.LevelError, logLevelFromEnv())

	os.Unsetenv("HTML5PARSER_LOG")
	assert.Equal(t, slog.LevelInfo, logLevelFromEnv())
}

func TestDescribeTokenFormatsEachKind(t *testing.T) {
	start := token.NewStartTag(token.Of(token.TagP), nil, false)
	assert.Contains(t, describeToken(start), "StartTag <p>")

	end := token.NewEndTag(token.Of(token.TagP))
	assert.Contains(t, describeToken(end), "EndTag </p>")

	comment := token.NewComment("note")
	assert.Contains(t, describeToken(comment), `"note"`)

	chars := token.NewCharacters("hi")
	assert.Contains(t, describeToken(chars), `"hi"`)
}

func TestOpenArgDefaultsToStdin(t *testing.T) {
	f, err := openArg(nil)
	assert.NoError(t, err)
	assert.Equal(t, os.Stdin, f)
}
