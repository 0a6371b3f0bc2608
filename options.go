package edi

import "fmt"

// Option configures a call to Parse or LooseParse.
type Option func(*options) error

type options struct {
	lookupName func(code string) string
}

// WithTransactionNames returns an Option that resolves transaction set
// codes to human-readable names through lookup instead of the built-in
// schemas table. The lookup must return a sentinel such as "unidentified"
// for unknown codes rather than failing.
func WithTransactionNames(lookup func(code string) string) Option {
	return func(o *options) error {
		if lookup == nil {
			return fmt.Errorf("edi: transaction name lookup must not be nil")
		}
		o.lookupName = lookup
		return nil
	}
}
