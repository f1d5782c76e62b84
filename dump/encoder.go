package dump

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"
)

// Format selects the dump encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported format
// name.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat validates a format name. The empty string
// selects FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encoder writes documents in a given format.
//
// The text format prints a "# " header line with the
// quoted source, then one line per record rendered from
// LineTemplate. Placeholders are index, kind, value (Go
// quoted), text (verbatim), offset and length, wrapped
// in StartTag and EndTag.
type Encoder struct {
	Format       Format
	LineTemplate string
	StartTag     string
	EndTag       string
}

// Encode writes docs to w.
func (en *Encoder) Encode(w io.Writer, docs ...Document) error {
	const errCtx = "encoding dump"

	var err error

	switch en.Format {
	case "", FormatText:
		err = en.encodeText(w, docs)
	case FormatJSON:
		err = encodeJSON(w, docs)
	case FormatYAML:
		err = encodeYAML(w, docs)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, en.Format)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// tags returns the configured start/end tags, falling
// back to double-brace defaults.
func (en *Encoder) tags() (string, string) {
	startTag := en.StartTag
	if startTag == "" {
		startTag = "{{"
	}

	endTag := en.EndTag
	if endTag == "" {
		endTag = "}}"
	}

	return startTag, endTag
}

// lineTemplate returns LineTemplate or the default
// "offset<TAB>kind<TAB>value" line spelled with the
// configured tags.
func (en *Encoder) lineTemplate() string {
	if en.LineTemplate != "" {
		return en.LineTemplate
	}

	st, et := en.tags()

	return st + "offset" + et + "\t" +
		st + "kind" + et + "\t" +
		st + "value" + et + "\n"
}

func (en *Encoder) encodeText(w io.Writer, docs []Document) error {
	const errCtx = "writing text"

	startTag, endTag := en.tags()

	tpl, err := fasttemplate.NewTemplate(
		en.lineTemplate(), startTag, endTag,
	)
	if err != nil {
		return fmt.Errorf("%s: parsing line template: %w", errCtx, err)
	}

	for _, doc := range docs {
		if _, err := io.WriteString(
			w, "# "+strconv.Quote(doc.Source)+"\n",
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		for _, rec := range doc.Records {
			if _, err := tpl.ExecuteStd(w, recordContext(rec)); err != nil {
				return fmt.Errorf(
					"%s: record %d: %w", errCtx, rec.Index, err,
				)
			}
		}

		if doc.Error != "" {
			if _, err := io.WriteString(
				w, "# error: "+doc.Error+"\n",
			); err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}
		}
	}

	return nil
}

func recordContext(rec Record) map[string]interface{} {
	return map[string]interface{}{
		"index":  strconv.Itoa(rec.Index),
		"kind":   rec.Kind,
		"value":  strconv.Quote(rec.Value),
		"text":   rec.Value,
		"offset": strconv.Itoa(rec.Offset),
		"length": strconv.Itoa(rec.Length),
	}
}

func encodeJSON(w io.Writer, docs []Document) error {
	const errCtx = "writing json"

	for _, doc := range docs {
		buf, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("%s: marshaling document: %w", errCtx, err)
		}

		buf = append(buf, '\n')

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return nil
}

func encodeYAML(w io.Writer, docs []Document) error {
	const errCtx = "writing yaml"

	firstObj := true

	for _, doc := range docs {
		buf, err := yaml.MarshalWithOptions(
			doc, yaml.CustomMarshaler[string](quoteString),
		)
		if err != nil {
			return fmt.Errorf("%s: marshaling document: %w", errCtx, err)
		}

		if firstObj {
			firstObj = false
		} else {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf(
					"%s: writing separator: %w", errCtx, err,
				)
			}
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%s: writing output: %w", errCtx, err)
		}
	}

	return nil
}

// quoteString renders every string scalar double-quoted.
// Plain and literal-block scalars drop leading spaces and
// trailing newlines of raw template text.
func quoteString(s string) ([]byte, error) {
	return []byte(strconv.Quote(s)), nil
}
