package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFakeStripeCreateIntent(t *testing.T) {
	intent, err := FakeStripe{}.CreateIntent(context.Background(), 28, "usd")
	require.NoError(t, err)
	require.Equal(t, "RandomSecret", intent.ClientSecret)
	require.Equal(t, float64(28), intent.Amount)
}
