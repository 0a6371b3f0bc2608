package edi_test

import (
	"strings"
	"testing"

	"github.com/sezna/edi"
	"github.com/stretchr/testify/require"
)

// buildSampleInterchange constructs the interchange from the parsing
// tests programmatically: one group, one transaction, two BGN segments.
func buildSampleInterchange() edi.Interchange {
	conventionRef := ""
	return edi.Interchange{
		AuthorizationQualifier:   "00",
		AuthorizationInformation: "",
		SecurityQualifier:        "00",
		SecurityInformation:      "",
		SenderQualifier:          "ZZ",
		SenderID:                 "SENDERISA",
		ReceiverQualifier:        "14",
		ReceiverID:               "0073268795005",
		Date:                     "020226",
		Time:                     "1534",
		StandardsID:              "U",
		Version:                  "00401",
		ControlNumber:            "000000001",
		AcknowledgementRequested: "0",
		TestIndicator:            "T",
		FunctionalGroups: []edi.FunctionalGroup{{
			IdentifierCode:          "PO",
			ApplicationSenderCode:   "SENDERGS",
			ApplicationReceiverCode: "007326879",
			Date:                    "20020226",
			Time:                    "1534",
			ControlNumber:           "1",
			ResponsibleAgencyCode:   "X",
			Version:                 "004010",
			Transactions: []edi.Transaction{{
				Code:                "140",
				Name:                "Product Registration",
				ControlNumber:       "100000001",
				ConventionReference: &conventionRef,
				Segments: []edi.Segment{
					{Tag: "BGN", Elements: []string{"20", "TEST_ID", "200615", "0000"}},
					{Tag: "BGN", Elements: []string{"15", "OTHER_TEST_ID", "", "", "END"}},
				},
			}},
		}},
	}
}

func TestInterchangeToX12String(t *testing.T) {
	ic := buildSampleInterchange()
	require.Equal(t,
		"ISA*00*          *00*          *ZZ*SENDERISA      *14*0073268795005  *020226*1534*U*00401*000000001*0*T*>"+
			"~GS*PO*SENDERGS*007326879*20020226*1534*1*X*004010"+
			"~ST*140*100000001*"+
			"~BGN*20*TEST_ID*200615*0000"+
			"~BGN*15*OTHER_TEST_ID***END"+
			"~SE*4*100000001"+
			"~GE*1*1"+
			"~IEA*1*000000001",
		ic.ToX12String(edi.DefaultDelimiters))
}

func TestInterchangeToX12String_OverlongFieldsNotTruncated(t *testing.T) {
	ic := buildSampleInterchange()
	ic.SenderID = "AN_UNUSUALLY_LONG_SENDER_ID"
	out := ic.ToX12String(edi.DefaultDelimiters)
	require.Contains(t, out, "*AN_UNUSUALLY_LONG_SENDER_ID*")
}

func TestSegmentToX12String(t *testing.T) {
	s := edi.Segment{Tag: "BGN", Elements: []string{"15", "OTHER_TEST_ID", "", "", "END"}}
	require.Equal(t, "BGN*15*OTHER_TEST_ID***END", s.ToX12String(edi.DefaultDelimiters))
}

func TestTransactionToX12String(t *testing.T) {
	tx := edi.Transaction{
		Code:          "850",
		ControlNumber: "000000001",
		Segments: []edi.Segment{
			{Tag: "BEG", Elements: []string{"00", "NE", "4500012345", "", "20260226"}},
		},
	}

	// The SE trailer is recomputed from the live tree: one segment plus
	// the ST and SE segments themselves.
	require.Equal(t,
		"ST*850*000000001~BEG*00*NE*4500012345**20260226~SE*3*000000001",
		tx.ToX12String(edi.DefaultDelimiters))
}

func TestTransactionToX12String_ConventionReference(t *testing.T) {
	ref := "004010X092"
	tx := edi.Transaction{Code: "270", ControlNumber: "0001", ConventionReference: &ref}
	require.Equal(t, "ST*270*0001*004010X092~SE*2*0001", tx.ToX12String(edi.DefaultDelimiters))
}

func TestFunctionalGroupToX12String(t *testing.T) {
	g := edi.FunctionalGroup{
		IdentifierCode:          "PO",
		ApplicationSenderCode:   "SENDERGS",
		ApplicationReceiverCode: "007326879",
		Date:                    "20020226",
		Time:                    "1534",
		ControlNumber:           "17",
		ResponsibleAgencyCode:   "X",
		Version:                 "004010",
	}
	require.Equal(t,
		"GS*PO*SENDERGS*007326879*20020226*1534*17*X*004010~GE*0*17",
		g.ToX12String(edi.DefaultDelimiters))
}

func TestDocumentToX12String(t *testing.T) {
	doc := edi.Document{
		Delimiters:   edi.DefaultDelimiters,
		Interchanges: []edi.Interchange{buildSampleInterchange()},
	}
	out := doc.ToX12String()
	require.True(t, strings.HasSuffix(out, "~IEA*1*000000001~"),
		"document serialization should terminate every interchange: %q", out)

	// A built-then-serialized document parses back into the same tree.
	reparsed, err := edi.Parse(out)
	require.NoError(t, err)
	require.Len(t, reparsed.Interchanges, 1)
	require.Equal(t, doc.Interchanges[0].FunctionalGroups, reparsed.Interchanges[0].FunctionalGroups)
}

func TestDocumentToX12String_TrailersRecomputed(t *testing.T) {
	// An inconsistent document built by hand still serializes with
	// correct trailers, because counts come from the tree, not from any
	// stored trailer values.
	doc := edi.Document{
		Delimiters:   edi.DefaultDelimiters,
		Interchanges: []edi.Interchange{buildSampleInterchange()},
	}
	doc.Interchanges[0].FunctionalGroups[0].Transactions[0].Segments = nil

	out := doc.ToX12String()
	require.Contains(t, out, "~SE*2*100000001~")

	_, err := edi.Parse(out)
	require.NoError(t, err)
}
