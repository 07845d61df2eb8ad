// Command html5parser exposes the tokenizer, tree constructor and DOM
// model as three demo subcommands (spec section 6): tokenize, parse, dom.
// Grounded on the teacher's example/main.go slog setup (a single
// slog.TextHandler read from an environment variable) but without the
// teacher's HTTP-server/component-rendering machinery, which has no
// analog in this core's scope.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dpotapov/html5parser/dom"
	"github.com/dpotapov/html5parser/token"
	"github.com/dpotapov/html5parser/tokenizer"
	"github.com/dpotapov/html5parser/tree"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevelFromEnv(),
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "tokenize":
		err = runTokenize(os.Args[2:], logger)
	case "parse":
		err = runParse(os.Args[2:], logger)
	case "dom":
		err = runDom(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("html5parser: command failed", "error", err)
		panic(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: html5parser <tokenize|parse|dom> [file]")
}

// logLevelFromEnv implements spec section 6's "implementation-defined
// logging level" environment variable, HTML5PARSER_LOG.
func logLevelFromEnv() slog.Level {
	switch os.Getenv("HTML5PARSER_LOG") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openArg(args []string) (*os.File, error) {
	fs := flag.NewFlagSet("html5parser", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() == 0 {
		return os.Stdin, nil
	}
	return os.Open(fs.Arg(0))
}

// runTokenize implements `tokenize <file>`: prints "[EMIT]: <token>" for
// every token the tokenizer produces (spec section 6).
func runTokenize(args []string, logger *slog.Logger) error {
	f, err := openArg(args)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	defer f.Close()

	tok := tokenizer.New(f, tokenizer.WithCoalesceCharacters(true))
	for {
		t, err := tok.Next()
		if err != nil {
			return fmt.Errorf("tokenize: %w", err)
		}
		fmt.Printf("[EMIT]: %s\n", describeToken(t))
		if t.Kind == token.KindEOF {
			break
		}
	}
	for _, e := range tok.Errors() {
		logger.Warn("html5parser: parse error", "code", e.Code.String(), "line", e.Line, "col", e.Col)
	}
	return nil
}

func describeToken(t token.Token) string {
	switch t.Kind {
	case token.KindStartTag:
		return fmt.Sprintf("StartTag <%s> (%d attrs)", t.Name.String(), len(t.Attrs))
	case token.KindEndTag:
		return fmt.Sprintf("EndTag </%s>", t.Name.String())
	case token.KindComment:
		return fmt.Sprintf("Comment %q", t.Data)
	case token.KindDoctype:
		return fmt.Sprintf("Doctype %q", t.DoctypeName)
	case token.KindCharacter:
		return fmt.Sprintf("Character %q", string(t.Char))
	case token.KindCharacters:
		return fmt.Sprintf("Characters %q", t.Text)
	default:
		return t.Kind.String()
	}
}

// runParse implements `parse <file>`: runs the full tree constructor and
// prints the finished Document (spec section 6).
func runParse(args []string, logger *slog.Logger) error {
	f, err := openArg(args)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	defer f.Close()

	p := tree.New(f, tree.WithLogger(logger))
	if err := p.Run(); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	dom.Dump(os.Stdout, p.Document().Root())
	return nil
}

// runDom implements `dom`: builds a small Document programmatically and
// prints it, a demo of the dom package's construction API with no parser
// involved at all (spec section 6).
func runDom(args []string) error {
	d := dom.NewDocument()
	html := d.NewElement(token.Of(token.TagHTML))
	d.Root().AppendChild(html)

	head := d.NewElement(token.Of(token.TagHead))
	html.AppendChild(head)
	title := d.NewElement(token.Of(token.TagTitle))
	head.AppendChild(title)
	title.AppendChild(d.NewText("html5parser"))

	body := d.NewElement(token.Of(token.TagBody))
	html.AppendChild(body)
	body.AppendChild(d.NewComment("built without a tokenizer"))
	p := d.NewElement(token.Of(token.TagP))
	body.AppendChild(p)
	p.AppendChild(d.NewText("hello, DOM"))

	dom.Dump(os.Stdout, d.Root())
	return nil
}
