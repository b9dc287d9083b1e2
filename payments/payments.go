package payments

import "context"

// Intent is the result of asking the payment gateway for a payment intent.
type Intent struct {
	ClientSecret string
	Amount       float64
}

// Client creates payment intents. Injected into the order handlers so tests
// and a future real gateway can swap it out.
type Client interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error)
}

// FakeStripe is a stand-in gateway that always succeeds with a fixed client
// secret. It has no idempotency key or retry handling, which a real gateway
// integration would need.
type FakeStripe struct{}

func (FakeStripe) CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	return &Intent{ClientSecret: "RandomSecret", Amount: amount}, nil
}
