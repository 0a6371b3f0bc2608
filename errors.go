package edi

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// TruncatedInput means the document is shorter than the minimum
	// header length needed to reach the delimiter positions.
	TruncatedInput ErrorKind = iota
	// DelimiterCollision means two or more of the three delimiter
	// characters are identical, making tokenization ambiguous.
	DelimiterCollision
	// MalformedSegment means a segment has fewer elements than its tag
	// requires.
	MalformedSegment
	// OutOfOrderSegment means a segment implies a nesting level that is
	// not currently open, e.g. a GS before any ISA.
	OutOfOrderSegment
	// EnvelopeMismatch means a closing segment's declared count or
	// control number disagrees with its opener. Strict mode only.
	EnvelopeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case TruncatedInput:
		return "truncated input"
	case DelimiterCollision:
		return "delimiter collision"
	case MalformedSegment:
		return "malformed segment"
	case OutOfOrderSegment:
		return "out of order segment"
	case EnvelopeMismatch:
		return "envelope mismatch"
	default:
		return "unknown"
	}
}

// A ParseError describes why a document could not be parsed. Every failure
// aborts the parse immediately; the library never repairs malformed input.
type ParseError struct {
	Kind   ErrorKind
	Reason string
	// Segment holds the raw tokens of the offending segment, when one
	// exists.
	Segment []string
	// Expected and Actual carry the two sides of an envelope mismatch.
	Expected string
	Actual   string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "edi: %s: %s", e.Kind, e.Reason)
	if e.Expected != "" || e.Actual != "" {
		fmt.Fprintf(&b, " -- expected: %s received: %s", e.Expected, e.Actual)
	}
	if len(e.Segment) > 0 {
		fmt.Fprintf(&b, " (in segment %q)", strings.Join(e.Segment, "*"))
	}
	return b.String()
}

func newParseError(kind ErrorKind, reason string, segment []string) *ParseError {
	return &ParseError{Kind: kind, Reason: reason, Segment: segment}
}

func newMismatchError(reason string, expected, actual any, segment []string) *ParseError {
	return &ParseError{
		Kind:     EnvelopeMismatch,
		Reason:   reason,
		Segment:  segment,
		Expected: fmt.Sprint(expected),
		Actual:   fmt.Sprint(actual),
	}
}
