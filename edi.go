package edi

import (
	"errors"

	"github.com/sezna/edi/internal/tokenizer"
	"github.com/sezna/edi/schemas"
)

// Parse parses an ANSI X12 document into a Document, validating every
// closing envelope segment (IEA, GE, SE) against the counts and control
// numbers recorded from its opener. Any failure aborts the parse and is
// returned as a *ParseError.
func Parse(input string, opts ...Option) (*Document, error) {
	return parse(input, false, opts)
}

// LooseParse is Parse without the envelope cross-checks: closing segments
// are still consumed and must still arrive while their container is open,
// but mismatched trailer counts and control numbers from lax senders are
// tolerated. All other error kinds apply as in Parse.
func LooseParse(input string, opts ...Option) (*Document, error) {
	return parse(input, true, opts)
}

func parse(input string, loose bool, opts []Option) (*Document, error) {
	o := options{lookupName: schemas.Lookup}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	delims, err := tokenizer.ExtractDelimiters(input)
	if err != nil {
		switch {
		case errors.Is(err, tokenizer.ErrTruncated):
			return nil, newParseError(TruncatedInput, err.Error(), nil)
		case errors.Is(err, tokenizer.ErrCollision):
			return nil, newParseError(DelimiterCollision, err.Error(), nil)
		}
		return nil, err
	}

	doc := &Document{
		Delimiters: Delimiters{
			Element:    delims.Element,
			SubElement: delims.SubElement,
			Segment:    delims.Segment,
		},
	}
	a := assembler{doc: doc, loose: loose, lookupName: o.lookupName}
	for _, tokens := range tokenizer.Tokenize(input, delims) {
		if err := a.consume(tokens); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// assembler folds the flat token stream into the four-level document tree.
// Nesting in X12 is strictly append-to-latest, so the "stack" of open
// containers reduces to the last element of each level's slice plus one
// open flag per level.
type assembler struct {
	doc        *Document
	loose      bool
	lookupName func(string) string

	interchangeOpen bool
	groupOpen       bool
	transactionOpen bool
}

// consume routes one segment token group by its leading tag. Opening tags
// (ISA, GS, ST) append a new container; closing tags (IEA, GE, SE)
// validate the latest open container at the matching level and close it;
// every other tag appends a generic segment to the open transaction.
func (a *assembler) consume(tokens tokenizer.SegmentTokens) error {
	switch tokens[0] {
	case "ISA":
		ic, err := parseInterchange(tokens)
		if err != nil {
			return err
		}
		a.doc.Interchanges = append(a.doc.Interchanges, ic)
		a.interchangeOpen = true
		a.groupOpen = false
		a.transactionOpen = false

	case "GS":
		if !a.interchangeOpen {
			return newParseError(OutOfOrderSegment,
				"unable to enqueue functional group when no interchange is open", tokens)
		}
		g, err := parseFunctionalGroup(tokens)
		if err != nil {
			return err
		}
		ic := a.interchange()
		ic.FunctionalGroups = append(ic.FunctionalGroups, g)
		a.groupOpen = true
		a.transactionOpen = false

	case "ST":
		if !a.groupOpen {
			return newParseError(OutOfOrderSegment,
				"unable to enqueue transaction when no functional group is open", tokens)
		}
		t, err := parseTransaction(tokens, a.lookupName)
		if err != nil {
			return err
		}
		g := a.group()
		g.Transactions = append(g.Transactions, t)
		a.transactionOpen = true

	case "SE":
		if !a.transactionOpen {
			return newParseError(OutOfOrderSegment,
				"unable to validate transaction when none is open", tokens)
		}
		if !a.loose {
			if err := a.transaction().validateTrailer(tokens); err != nil {
				return err
			}
		}
		a.transactionOpen = false

	case "GE":
		if !a.groupOpen {
			return newParseError(OutOfOrderSegment,
				"unable to validate functional group when none is open", tokens)
		}
		if !a.loose {
			if err := a.group().validateTrailer(tokens); err != nil {
				return err
			}
		}
		a.groupOpen = false
		a.transactionOpen = false

	case "IEA":
		if !a.interchangeOpen {
			return newParseError(OutOfOrderSegment,
				"unable to validate interchange when none is open", tokens)
		}
		if !a.loose {
			if err := a.interchange().validateTrailer(tokens); err != nil {
				return err
			}
		}
		a.interchangeOpen = false
		a.groupOpen = false
		a.transactionOpen = false

	default:
		if !a.transactionOpen {
			return newParseError(OutOfOrderSegment,
				"unable to enqueue generic segment when no transaction is open", tokens)
		}
		s, err := parseSegment(tokens)
		if err != nil {
			return err
		}
		t := a.transaction()
		t.Segments = append(t.Segments, s)
	}
	return nil
}

func (a *assembler) interchange() *Interchange {
	return &a.doc.Interchanges[len(a.doc.Interchanges)-1]
}

func (a *assembler) group() *FunctionalGroup {
	ic := a.interchange()
	return &ic.FunctionalGroups[len(ic.FunctionalGroups)-1]
}

func (a *assembler) transaction() *Transaction {
	g := a.group()
	return &g.Transactions[len(g.Transactions)-1]
}
