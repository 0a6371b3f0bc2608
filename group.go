package edi

import (
	"strconv"
	"strings"
)

// FunctionalGroup groups transactions of a related business-document type
// sent together. It is initialized by a GS segment and ended by a GE
// segment.
type FunctionalGroup struct {
	// IdentifierCode identifies the function of this group, e.g. "PO"
	// for purchase orders or "IN" for invoices.
	IdentifierCode string `json:"identifier_code"`
	// ApplicationSenderCode identifies the sender of this group.
	ApplicationSenderCode string `json:"application_sender_code"`
	// ApplicationReceiverCode identifies the receiver of this group.
	ApplicationReceiverCode string `json:"application_receiver_code"`
	// Date of the function performed, typically CCYYMMDD.
	Date string `json:"date"`
	// Time of the function performed, expressed in 24-hour clock time as
	// HHMM, HHMMSS, HHMMSSD or HHMMSSDD.
	Time string `json:"time"`
	// ControlNumber identifies this group. It must be echoed by the
	// closing GE segment.
	ControlNumber string `json:"control_number"`
	// ResponsibleAgencyCode identifies the issuer of the standard, e.g.
	// "X" for ASC X12.
	ResponsibleAgencyCode string `json:"responsible_agency_code"`
	// Version is the version, release and industry identifier of the
	// standard used for this group, including the GS and GE segments.
	Version string `json:"version"`
	// Transactions are the transaction sets this group contains.
	Transactions []Transaction `json:"transactions"`
}

// parseFunctionalGroup builds a FunctionalGroup from the tokens of a GS
// segment.
func parseFunctionalGroup(tokens []string) (FunctionalGroup, error) {
	elements := trimTokens(tokens)
	if len(elements) < 9 {
		return FunctionalGroup{}, newParseError(MalformedSegment,
			"GS segment does not contain enough elements, at least 9 required", tokens)
	}
	return FunctionalGroup{
		IdentifierCode:          elements[1],
		ApplicationSenderCode:   elements[2],
		ApplicationReceiverCode: elements[3],
		Date:                    elements[4],
		Time:                    elements[5],
		ControlNumber:           elements[6],
		ResponsibleAgencyCode:   elements[7],
		Version:                 elements[8],
	}, nil
}

// validateTrailer cross-checks a closing GE segment against this group.
func (g *FunctionalGroup) validateTrailer(tokens []string) error {
	elements := trimTokens(tokens)
	if len(elements) < 3 {
		return newParseError(MalformedSegment,
			"GE segment does not contain enough elements, at least 3 required", tokens)
	}
	declared, err := strconv.Atoi(elements[1])
	if err != nil || declared != len(g.Transactions) {
		return newMismatchError("functional group validation failed: incorrect number of transactions",
			len(g.Transactions), elements[1], tokens)
	}
	if elements[2] != g.ControlNumber {
		return newMismatchError("functional group validation failed: mismatched control number",
			g.ControlNumber, elements[2], tokens)
	}
	return nil
}

// ToX12String converts this group, its transactions and a freshly computed
// GE trailer back into X12 text, without a trailing segment delimiter.
func (g *FunctionalGroup) ToX12String(d Delimiters) string {
	var b strings.Builder
	g.appendX12(&b, d)
	return b.String()
}

func (g *FunctionalGroup) appendX12(b *strings.Builder, d Delimiters) {
	b.WriteString("GS")
	for _, field := range []string{
		g.IdentifierCode,
		g.ApplicationSenderCode,
		g.ApplicationReceiverCode,
		g.Date,
		g.Time,
		g.ControlNumber,
		g.ResponsibleAgencyCode,
		g.Version,
	} {
		b.WriteByte(d.Element)
		b.WriteString(field)
	}
	for i := range g.Transactions {
		b.WriteByte(d.Segment)
		g.Transactions[i].appendX12(b, d)
	}
	b.WriteByte(d.Segment)
	b.WriteString("GE")
	b.WriteByte(d.Element)
	b.WriteString(strconv.Itoa(len(g.Transactions)))
	b.WriteByte(d.Element)
	b.WriteString(g.ControlNumber)
}
