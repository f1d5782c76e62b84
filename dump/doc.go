// Package dump serializes lexer token streams for inspection and
// tooling. A Document pairs a source with its token Records (kind, value,
// byte offset and length). The Encoder writes documents as text lines
// rendered through a valyala/fasttemplate line template, as JSON objects,
// or as a multi-document YAML stream separated by "---" markers. Decode
// reads JSON and YAML dumps back, and Document.Tokens rebuilds the token
// stream so it can be reassembled into source bytes.
package dump
