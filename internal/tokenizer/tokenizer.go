// Package tokenizer turns a raw X12 document into segment token groups.
//
// X12 is self-describing: the interchange header fixes the widths of its
// own fields, so the three delimiter characters always sit at byte offsets
// 103-105 of a well-formed document. Extraction therefore needs no
// scanning, only a length check and a collision check.
package tokenizer

import (
	"errors"
	"strings"
)

// minHeaderLen is the number of bytes needed for the ISA segment to reach
// the delimiter-bearing offsets plus the segment delimiter itself.
const minHeaderLen = 106

// Offsets of the delimiter characters within the ISA header.
const (
	elementOffset    = 103
	subElementOffset = 104
	segmentOffset    = 105
)

// Sentinel errors surfaced during delimiter extraction. The root package
// wraps these into its public error type.
var (
	ErrTruncated = errors.New("input document is not long enough to be an EDI document")
	ErrCollision = errors.New("delimiters are not pairwise distinct")
)

// Delimiters holds the three format-defining characters of a document.
type Delimiters struct {
	Element    byte
	SubElement byte
	Segment    byte
}

// ExtractDelimiters reads the element, sub-element and segment delimiters
// from their fixed positions in the interchange header.
func ExtractDelimiters(input string) (Delimiters, error) {
	if len(input) <= minHeaderLen {
		return Delimiters{}, ErrTruncated
	}
	d := Delimiters{
		Element:    input[elementOffset],
		SubElement: input[subElementOffset],
		Segment:    input[segmentOffset],
	}
	if d.Element == d.SubElement || d.Element == d.Segment || d.SubElement == d.Segment {
		return Delimiters{}, ErrCollision
	}
	return d, nil
}

// SegmentTokens is one segment split into its elements. The first token is
// the segment tag; sub-element delimiters are preserved verbatim inside
// elements.
type SegmentTokens []string

// Tokenize splits the document into segment token groups. Candidate
// segments are trimmed of surrounding whitespace and dropped when empty,
// which absorbs line breaks some senders insert around segment delimiters.
func Tokenize(input string, d Delimiters) []SegmentTokens {
	candidates := strings.Split(input, string(d.Segment))
	tokens := make([]SegmentTokens, 0, len(candidates))
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		tokens = append(tokens, strings.Split(candidate, string(d.Element)))
	}
	return tokens
}
