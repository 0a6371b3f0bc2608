/*
Package edi parses ANSI X12 EDI documents into a navigable tree and
serializes such trees back into X12 text.

X12 is a flat, delimiter-separated wire format used for inter-business
document exchange (purchase orders, invoices, acknowledgments). A document
is self-describing: the interchange header fixes the three delimiter
characters at known byte offsets, and the rest of the document is split
into segments and elements using them. Parsing folds the flat segment
stream into four nested levels:

	Document
	└── Interchange        (ISA ... IEA)
	    └── FunctionalGroup    (GS ... GE)
	        └── Transaction        (ST ... SE)
	            └── Segment            (BGN, REF, IT1, ...)

Parse validates every closing envelope segment against the counts and
control numbers recorded from its opener and fails on any disagreement:

	doc, err := edi.Parse(input)
	if err != nil {
		// handle *edi.ParseError
	}
	fmt.Println(doc.Interchanges[0].SenderID)

Some senders emit trailers whose counts or control numbers do not add up.
LooseParse accepts such documents by skipping the cross-checks while still
enforcing structural ordering:

	doc, err := edi.LooseParse(input)

A Document (or any sub-tree) converts back into X12 text. Trailer counts
and control numbers are recomputed from the live tree, and the fixed-width
ISA fields are re-padded to their standard widths, so parse followed by
serialize is format-preserving for well-formed input:

	out := doc.ToX12String()

Transaction set codes are resolved to human-readable names ("850" becomes
"Purchase Order") through the schemas subpackage; an alternative lookup
can be injected with WithTransactionNames.
*/
package edi
