package statemachine

import (
	"net/http"
	"testing"

	"food-hub-api/apierrors"
	"food-hub-api/models"

	"github.com/stretchr/testify/require"
)

func TestPendingToPaid(t *testing.T) {
	require.NoError(t, CanTransition(models.StatusPending, models.StatusPaid))
}

func TestPaidIsTerminal(t *testing.T) {
	err := CanTransition(models.StatusPaid, models.StatusPending)
	require.Error(t, err)

	var apiErr *apierrors.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Contains(t, apiErr.Message, "terminal state")

	require.Error(t, CanTransition(models.StatusPaid, models.StatusPaid))
}

func TestValidTransitionsFrom(t *testing.T) {
	require.Equal(t, []models.OrderStatus{models.StatusPaid}, ValidTransitionsFrom(models.StatusPending))
	require.Empty(t, ValidTransitionsFrom(models.StatusPaid))
}
