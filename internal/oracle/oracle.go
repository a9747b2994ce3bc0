// Package oracle defines the text-completion boundary: a prompt goes out, a
// completion comes back, and any transport or service problem surfaces as
// ErrUnavailable. Callers are expected to degrade gracefully, never crash.
package oracle

import (
	"context"
	"errors"
)

// ErrUnavailable wraps every transport, API, or decoding failure so callers
// can treat the oracle as a single fallible collaborator.
var ErrUnavailable = errors.New("oracle unavailable")

// Client is the completion oracle: prompt in, free text out.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ClientFunc adapts a function to the Client interface. Handy in tests.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

func (f ClientFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
