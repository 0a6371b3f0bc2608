package edi

import "strings"

// Segment is one record within a transaction: a short tag (the segment
// abbreviation, e.g. "BGN") plus its ordered elements. Sub-element
// splitting is not performed; an element containing sub-element delimiters
// is kept intact as one string.
type Segment struct {
	Tag      string   `json:"tag"`
	Elements []string `json:"elements"`
}

// parseSegment builds a Segment from the tokens of any non-envelope
// segment.
func parseSegment(tokens []string) (Segment, error) {
	if len(tokens) < 2 {
		return Segment{}, newParseError(MalformedSegment,
			"at least two elements are required in a segment", tokens)
	}
	elements := trimTokens(tokens)
	return Segment{Tag: elements[0], Elements: elements[1:]}, nil
}

// ToX12String converts this segment back into its X12 representation,
// without a trailing segment delimiter.
func (s *Segment) ToX12String(d Delimiters) string {
	var b strings.Builder
	s.appendX12(&b, d)
	return b.String()
}

func (s *Segment) appendX12(b *strings.Builder, d Delimiters) {
	b.WriteString(s.Tag)
	for _, element := range s.Elements {
		b.WriteByte(d.Element)
		b.WriteString(element)
	}
}
