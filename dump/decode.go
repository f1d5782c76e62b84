package dump

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// ErrNotDecodable is returned by Decode for the text
// format.
var ErrNotDecodable = errors.New("format cannot be decoded")

// Decode reads every document of a JSON or YAML dump
// from r.
func Decode(r io.Reader, f Format) ([]Document, error) {
	const errCtx = "decoding dump"

	var (
		docs []Document
		err  error
	)

	switch f {
	case FormatJSON:
		docs, err = decodeJSON(r)
	case FormatYAML:
		docs, err = decodeYAML(r)
	case "", FormatText:
		err = fmt.Errorf("%w: %s", ErrNotDecodable, FormatText)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return docs, nil
}

// DecodeAllDocs decodes all YAML documents from raw
// bytes.
func DecodeAllDocs(raw []byte) ([]Document, error) {
	return Decode(bytes.NewReader(raw), FormatYAML)
}

func decodeJSON(r io.Reader) ([]Document, error) {
	const errCtx = "decoding json"

	decoder := json.NewDecoder(r)

	var docs []Document

	for {
		var doc Document

		err := decoder.Decode(&doc)
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		if doc.isZero() {
			continue
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func decodeYAML(r io.Reader) ([]Document, error) {
	const errCtx = "decoding yaml"

	decoder := yaml.NewDecoder(r)

	var docs []Document

	for {
		var doc Document

		err := decoder.Decode(&doc)
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		if doc.isZero() {
			continue
		}

		docs = append(docs, doc)
	}

	return docs, nil
}
