package ports

import "context"

// ReceiptSigner turns a serialized receipt payload into a signed token.
// The payload is UTF-8 JSON bytes; the returned token is opaque to the core.
type ReceiptSigner interface {
	Sign(ctx context.Context, payload []byte) (string, error)
}
