// Package main provides the leaflex CLI that tokenizes
// template files and writes a token dump, or reassembles
// a JSON/YAML dump back into template source.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/byte4ever/leafkit/dump"
	"github.com/byte4ever/leafkit/lexer"
)

// errSyntax marks a run where strict lexing rejected at
// least one input. The dump is still written.
var errSyntax = errors.New("template syntax errors")

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

type options struct {
	templates    arrayFlags
	output       string
	format       string
	lineTemplate string
	startTag     string
	endTag       string
	strict       bool
	reassemble   bool
	verbose      bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.Var(
		&opts.templates,
		"template",
		"input file path (repeatable, stdin if absent)",
	)

	fs.StringVar(
		&opts.output, "output", "",
		"output file path (default: stdout)",
	)

	fs.StringVar(
		&opts.format, "format", string(dump.FormatText),
		"dump format: text, json or yaml",
	)

	fs.StringVar(
		&opts.lineTemplate, "line_template", "",
		"per-token line template for the text format",
	)

	fs.StringVar(
		&opts.startTag, "start_tag", "{{",
		"start tag for line template placeholders",
	)

	fs.StringVar(
		&opts.endTag, "end_tag", "}}",
		"end tag for line template placeholders",
	)

	fs.BoolVar(
		&opts.strict, "strict", false,
		"report malformed tags instead of truncating",
	)

	fs.BoolVar(
		&opts.reassemble, "reassemble", false,
		"read a json/yaml dump and write the template source",
	)

	fs.BoolVar(
		&opts.verbose, "verbose", false,
		"enable debug logging",
	)

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

// input is one named template source.
type input struct {
	name    string
	content []byte
}

func readInputs(paths []string, stdin io.Reader) ([]input, error) {
	const errCtx = "reading inputs"

	if len(paths) == 0 {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: reading stdin: %w", errCtx, err,
			)
		}

		return []input{{name: "-", content: content}}, nil
	}

	inputs := make([]input, 0, len(paths))

	for _, pa := range paths {
		content, err := os.ReadFile(pa) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		inputs = append(inputs, input{name: pa, content: content})
	}

	return inputs, nil
}

// newLogger returns a text logger writing to w, at debug
// level when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(
		w, &slog.HandlerOptions{Level: level},
	))
}

// lexInputs turns every input into a dump document. In
// strict mode the returned error wraps errSyntax when
// any input failed.
func lexInputs(
	logger *slog.Logger,
	inputs []input,
	strict bool,
) ([]dump.Document, error) {
	docs := make([]dump.Document, 0, len(inputs))

	var failed int

	for _, in := range inputs {
		lx := lexer.New(in.content)

		if !strict {
			tokens := lx.LexAll()

			if lx.Remaining() > 0 {
				logger.Debug(
					"input truncated",
					"input", in.name,
					"offset", lx.Offset(),
					"state", lx.State().String(),
				)
			}

			docs = append(docs, dump.NewDocument(
				string(in.content), tokens, nil,
			))

			continue
		}

		tokens, err := lx.LexAllStrict()
		if err != nil {
			failed++

			logger.Warn(
				"malformed template",
				"input", in.name,
				"error", err,
			)
		}

		docs = append(docs, dump.NewDocument(
			string(in.content), tokens, err,
		))
	}

	if failed > 0 {
		return docs, fmt.Errorf(
			"%w: %d of %d inputs", errSyntax, failed, len(inputs),
		)
	}

	return docs, nil
}

func reassembleInputs(inputs []input, f dump.Format, out io.Writer) error {
	const errCtx = "reassembling"

	for _, in := range inputs {
		docs, err := dump.Decode(bytes.NewReader(in.content), f)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", errCtx, in.name, err)
		}

		for _, doc := range docs {
			tokens, err := doc.Tokens()
			if err != nil {
				return fmt.Errorf(
					"%s: %s: %w", errCtx, in.name, err,
				)
			}

			if _, err := out.Write(lexer.Reassemble(tokens)); err != nil {
				return fmt.Errorf(
					"%s: writing output: %w", errCtx, err,
				)
			}
		}
	}

	return nil
}

// openOutput returns a writer for the result. When
// outPath is empty it returns stdout. The returned
// closer may be nil.
func openOutput(outPath string) (io.Writer, func(), error) {
	const errCtx = "opening output"

	if outPath == "" {
		return os.Stdout, nil, nil
	}

	fo, err := os.Create(outPath) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return fo, func() {
		_ = fo.Close() //nolint:errcheck // best-effort close
	}, nil
}

func run(args []string, stdin io.Reader) error {
	const errCtx = "leaflex"

	opts, err := parseFlags(
		flag.NewFlagSet("leaflex", flag.ContinueOnError), args,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	logger := newLogger(os.Stderr, opts.verbose)

	format, err := dump.ParseFormat(opts.format)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	inputs, err := readInputs(opts.templates, stdin)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	out, closer, err := openOutput(opts.output)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if closer != nil {
		defer closer()
	}

	if opts.reassemble {
		if err := reassembleInputs(inputs, format, out); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	docs, lexErr := lexInputs(logger, inputs, opts.strict)

	en := dump.Encoder{
		Format:       format,
		LineTemplate: opts.lineTemplate,
		StartTag:     opts.startTag,
		EndTag:       opts.endTag,
	}

	if err := en.Encode(out, docs...); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if lexErr != nil {
		return fmt.Errorf("%s: %w", errCtx, lexErr)
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
