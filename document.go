package edi

import "strings"

// Delimiters holds the three characters that define a document's format:
// the element separator, the sub-element separator and the segment
// terminator. They must be pairwise distinct or tokenization would be
// ambiguous.
type Delimiters struct {
	Element    byte `json:"element"`
	SubElement byte `json:"sub_element"`
	Segment    byte `json:"segment"`
}

// DefaultDelimiters are the conventional delimiter choices ('*', '>', '~')
// seen in most X12 interchanges. Use them when building a Document
// programmatically.
var DefaultDelimiters = Delimiters{Element: '*', SubElement: '>', Segment: '~'}

// Document is an entire parsed EDI document: the interchanges it contains
// and the delimiters used throughout. A Document is self-contained and
// exclusively owned by its caller once returned from Parse.
type Document struct {
	Delimiters   Delimiters    `json:"delimiters"`
	Interchanges []Interchange `json:"interchanges"`
}

// ToX12String serializes the document back into ANSI X12 text. Trailer
// counts and control numbers are recomputed from the live tree rather than
// echoed from stored values, so a built-then-serialized document is always
// internally consistent.
func (d *Document) ToX12String() string {
	var b strings.Builder
	for i := range d.Interchanges {
		d.Interchanges[i].appendX12(&b, d.Delimiters)
		b.WriteByte(d.Delimiters.Segment)
	}
	return b.String()
}

// trimTokens trims surrounding whitespace from every token of a segment.
// X12 elements carry no significant surrounding whitespace outside the
// fixed-width ISA fields, which are re-padded on serialization.
func trimTokens(tokens []string) []string {
	trimmed := make([]string, len(tokens))
	for i, tok := range tokens {
		trimmed[i] = strings.TrimSpace(tok)
	}
	return trimmed
}

// padRight pads s with spaces to the given width. Values longer than the
// width are emitted as-is rather than truncated.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
