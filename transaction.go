package edi

import (
	"strconv"
	"strings"
)

// Transaction is one complete business document (e.g. one purchase order),
// initialized by an ST segment and ended by an SE segment.
type Transaction struct {
	// Code is the numeric code identifying the transaction set type.
	Code string `json:"code"`
	// Name is the human-readable form of Code, resolved through the
	// injected lookup. Unknown codes resolve to "unidentified".
	Name string `json:"name"`
	// ControlNumber identifies this transaction within its functional
	// group. It must be echoed by the closing SE segment.
	ControlNumber string `json:"control_number"`
	// ConventionReference is the optional implementation convention
	// reference from ST03. Nil when the element was absent.
	ConventionReference *string `json:"convention_reference,omitempty"`
	// Segments are the generic segments contained in this transaction.
	Segments []Segment `json:"segments"`
}

// parseTransaction builds a Transaction from the tokens of an ST segment.
func parseTransaction(tokens []string, lookupName func(string) string) (Transaction, error) {
	elements := trimTokens(tokens)
	if len(elements) < 3 {
		return Transaction{}, newParseError(MalformedSegment,
			"ST segment does not contain enough elements, at least 3 required", tokens)
	}
	t := Transaction{
		Code:          elements[1],
		Name:          lookupName(elements[1]),
		ControlNumber: elements[2],
	}
	if len(elements) >= 4 {
		ref := elements[3]
		t.ConventionReference = &ref
	}
	return t, nil
}

// validateTrailer cross-checks a closing SE segment against this
// transaction. The declared segment count includes the ST and SE segments
// themselves, hence the +2.
func (t *Transaction) validateTrailer(tokens []string) error {
	elements := trimTokens(tokens)
	if len(elements) < 3 {
		return newParseError(MalformedSegment,
			"SE segment does not contain enough elements, at least 3 required", tokens)
	}
	expected := len(t.Segments) + 2
	declared, err := strconv.Atoi(elements[1])
	if err != nil || declared != expected {
		return newMismatchError("transaction validation failed: incorrect number of segments",
			expected, elements[1], tokens)
	}
	if elements[2] != t.ControlNumber {
		return newMismatchError("transaction validation failed: mismatched control number",
			t.ControlNumber, elements[2], tokens)
	}
	return nil
}

// ToX12String converts this transaction, its segments and a freshly
// computed SE trailer back into X12 text, without a trailing segment
// delimiter.
func (t *Transaction) ToX12String(d Delimiters) string {
	var b strings.Builder
	t.appendX12(&b, d)
	return b.String()
}

func (t *Transaction) appendX12(b *strings.Builder, d Delimiters) {
	b.WriteString("ST")
	b.WriteByte(d.Element)
	b.WriteString(t.Code)
	b.WriteByte(d.Element)
	b.WriteString(t.ControlNumber)
	if t.ConventionReference != nil {
		b.WriteByte(d.Element)
		b.WriteString(*t.ConventionReference)
	}
	for i := range t.Segments {
		b.WriteByte(d.Segment)
		t.Segments[i].appendX12(b, d)
	}
	b.WriteByte(d.Segment)
	b.WriteString("SE")
	b.WriteByte(d.Element)
	b.WriteString(strconv.Itoa(len(t.Segments) + 2))
	b.WriteByte(d.Element)
	b.WriteString(t.ControlNumber)
}
