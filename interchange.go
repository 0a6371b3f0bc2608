package edi

import (
	"strconv"
	"strings"
)

// isaFieldWidths are the mandated byte widths of the fifteen ISA envelope
// fields. ISA16 is the sub-element separator itself and is emitted from
// the document's delimiters.
var isaFieldWidths = [15]int{2, 10, 2, 10, 2, 15, 2, 15, 6, 4, 1, 5, 9, 1, 1}

// Interchange is the ISA/IEA envelope: metadata identifying the sender and
// receiver of a set of functional groups, commonly just called "the
// envelope".
type Interchange struct {
	// AuthorizationQualifier categorizes AuthorizationInformation.
	// Qualifiers are two-digit prefixes which categorize the following
	// element.
	AuthorizationQualifier string `json:"authorization_qualifier"`
	// AuthorizationInformation is used for additional identification or
	// authorization of the sender or of the data in the interchange.
	AuthorizationInformation string `json:"authorization_information"`
	// SecurityQualifier categorizes SecurityInformation.
	SecurityQualifier string `json:"security_qualifier"`
	// SecurityInformation identifies security information about the
	// sender or the data in the interchange.
	SecurityInformation string `json:"security_information"`
	// SenderQualifier designates the system or method of code structure
	// used for SenderID.
	SenderQualifier string `json:"sender_qualifier"`
	// SenderID is the identification code published by the sender for
	// other parties to route data to them.
	SenderID string `json:"sender_id"`
	// ReceiverQualifier designates the system or method of code
	// structure used for ReceiverID.
	ReceiverQualifier string `json:"receiver_qualifier"`
	// ReceiverID is the identification code published by the receiver of
	// the data.
	ReceiverID string `json:"receiver_id"`
	// Date of the interchange, YYMMDD.
	Date string `json:"date"`
	// Time of the interchange, HHMM.
	Time string `json:"time"`
	// StandardsID identifies the agency responsible for the control
	// standard used by the enclosed message, e.g. "U".
	StandardsID string `json:"standards_id"`
	// Version is the version number of the interchange control segments.
	Version string `json:"version"`
	// ControlNumber is assigned by the sender and must be echoed by the
	// closing IEA segment.
	ControlNumber string `json:"control_number"`
	// AcknowledgementRequested is "1" when an interchange acknowledgment
	// is requested, "0" otherwise.
	AcknowledgementRequested string `json:"acknowledgement_requested"`
	// TestIndicator marks the enclosed data as test ("T"), production
	// ("P") or information ("I").
	TestIndicator string `json:"test_indicator"`
	// FunctionalGroups are the groups this interchange contains.
	FunctionalGroups []FunctionalGroup `json:"functional_groups"`
}

// parseInterchange builds an Interchange from the tokens of an ISA
// segment.
func parseInterchange(tokens []string) (Interchange, error) {
	elements := trimTokens(tokens)
	if len(elements) < 16 {
		return Interchange{}, newParseError(MalformedSegment,
			"ISA segment does not contain enough elements, at least 16 required", tokens)
	}
	return Interchange{
		AuthorizationQualifier:   elements[1],
		AuthorizationInformation: elements[2],
		SecurityQualifier:        elements[3],
		SecurityInformation:      elements[4],
		SenderQualifier:          elements[5],
		SenderID:                 elements[6],
		ReceiverQualifier:        elements[7],
		ReceiverID:               elements[8],
		Date:                     elements[9],
		Time:                     elements[10],
		StandardsID:              elements[11],
		Version:                  elements[12],
		ControlNumber:            elements[13],
		AcknowledgementRequested: elements[14],
		TestIndicator:            elements[15],
	}, nil
}

// validateTrailer cross-checks a closing IEA segment against this
// interchange.
func (ic *Interchange) validateTrailer(tokens []string) error {
	elements := trimTokens(tokens)
	if len(elements) < 3 {
		return newParseError(MalformedSegment,
			"IEA segment does not contain enough elements, at least 3 required", tokens)
	}
	declared, err := strconv.Atoi(elements[1])
	if err != nil || declared != len(ic.FunctionalGroups) {
		return newMismatchError("interchange validation failed: incorrect number of functional groups",
			len(ic.FunctionalGroups), elements[1], tokens)
	}
	if elements[2] != ic.ControlNumber {
		return newMismatchError("interchange validation failed: mismatched control number",
			ic.ControlNumber, elements[2], tokens)
	}
	return nil
}

// ToX12String converts this interchange, its functional groups and a
// freshly computed IEA trailer back into X12 text, without a trailing
// segment delimiter. The fifteen ISA fields are right-padded with spaces
// to their standard widths.
func (ic *Interchange) ToX12String(d Delimiters) string {
	var b strings.Builder
	ic.appendX12(&b, d)
	return b.String()
}

func (ic *Interchange) appendX12(b *strings.Builder, d Delimiters) {
	fields := [15]string{
		ic.AuthorizationQualifier,
		ic.AuthorizationInformation,
		ic.SecurityQualifier,
		ic.SecurityInformation,
		ic.SenderQualifier,
		ic.SenderID,
		ic.ReceiverQualifier,
		ic.ReceiverID,
		ic.Date,
		ic.Time,
		ic.StandardsID,
		ic.Version,
		ic.ControlNumber,
		ic.AcknowledgementRequested,
		ic.TestIndicator,
	}
	b.WriteString("ISA")
	for i, field := range fields {
		b.WriteByte(d.Element)
		b.WriteString(padRight(field, isaFieldWidths[i]))
	}
	b.WriteByte(d.Element)
	b.WriteByte(d.SubElement)
	for i := range ic.FunctionalGroups {
		b.WriteByte(d.Segment)
		ic.FunctionalGroups[i].appendX12(b, d)
	}
	b.WriteByte(d.Segment)
	b.WriteString("IEA")
	b.WriteByte(d.Element)
	b.WriteString(strconv.Itoa(len(ic.FunctionalGroups)))
	b.WriteByte(d.Element)
	b.WriteString(ic.ControlNumber)
}
