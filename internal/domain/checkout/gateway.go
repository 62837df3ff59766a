package checkout

import "context"

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=checkout

// Gateway starts a checkout with the payment provider. Implementations
// classify every possible outcome into a Result; transport and parse
// failures surface as result variants, never as errors.
type Gateway interface {
	CreateCheckout(ctx context.Context, payload Payload) Result
}

// Recorder persists a successfully created checkout so the IPN listener
// can correlate provider notifications later.
type Recorder interface {
	RecordPending(ctx context.Context, reference, orderID, token, redirectURL string) error
}
