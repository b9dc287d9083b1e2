package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"food-hub-api/config"
	"food-hub-api/models"

	"github.com/stretchr/testify/require"
)

func TestCreateOrderPricing(t *testing.T) {
	r := newTestRouter(t)
	admin := register(t, r, "alice", "alice@example.com")
	bob := register(t, r, "bob", "bob@example.com")
	id := createMeal(t, r, admin, "pepperoni", 10)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"meal": id, "amount": 2}},
		"tax":         5,
		"shippingFee": 3,
	}, bob)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := parseBody(t, rec)
	require.Equal(t, "RandomSecret", body["clientSecret"])

	order := body["order"].(map[string]interface{})
	require.Equal(t, float64(20), order["subtotal"])
	require.Equal(t, float64(28), order["total"])
	require.Equal(t, "pending", order["status"])

	items := order["orderItems"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	require.Equal(t, "pepperoni", item["name"])
	require.Equal(t, float64(10), item["price"])
	require.Equal(t, float64(2), item["amount"])
}

func TestCreateOrderValidation(t *testing.T) {
	r := newTestRouter(t)
	admin := register(t, r, "alice", "alice@example.com")
	bob := register(t, r, "bob", "bob@example.com")
	id := createMeal(t, r, admin, "pepperoni", 10)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"items":       []map[string]interface{}{},
		"tax":         5,
		"shippingFee": 3,
	}, bob)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "There are no items in the cart", parseBody(t, rec)["msg"])

	// zero tax reads as missing
	rec = doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"meal": id, "amount": 1}},
		"shippingFee": 3,
	}, bob)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Please include tax and shipping fee", parseBody(t, rec)["msg"])
}

func TestCreateOrderUnknownMealPersistsNothing(t *testing.T) {
	r := newTestRouter(t)
	admin := register(t, r, "alice", "alice@example.com")
	bob := register(t, r, "bob", "bob@example.com")
	id := createMeal(t, r, admin, "pepperoni", 10)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"meal": id, "amount": 1},
			{"meal": 777, "amount": 1},
		},
		"tax":         5,
		"shippingFee": 3,
	}, bob)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "No meal with id: 777", parseBody(t, rec)["msg"])

	var count int64
	require.NoError(t, config.DB.Model(&models.Order{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestOrderSnapshotSurvivesPriceChange(t *testing.T) {
	r := newTestRouter(t)
	admin := register(t, r, "alice", "alice@example.com")
	bob := register(t, r, "bob", "bob@example.com")
	id := createMeal(t, r, admin, "pepperoni", 10)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"meal": id, "amount": 1}},
		"tax":         5,
		"shippingFee": 3,
	}, bob)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := uint(parseBody(t, rec)["order"].(map[string]interface{})["id"].(float64))

	rec = doJSON(t, r, http.MethodPatch, mealPath(id), map[string]interface{}{"price": 99.0}, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", orderID), nil, bob)
	require.Equal(t, http.StatusOK, rec.Code)
	order := parseBody(t, rec)["order"].(map[string]interface{})
	item := order["orderItems"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, float64(10), item["price"])
}

func TestGetSingleOrderOwnership(t *testing.T) {
	r := newTestRouter(t)
	admin := register(t, r, "alice", "alice@example.com")
	bob := register(t, r, "bob", "bob@example.com")
	carol := register(t, r, "carol", "carol@example.com")
	id := createMeal(t, r, admin, "pepperoni", 10)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"meal": id, "amount": 1}},
		"tax":         5,
		"shippingFee": 3,
	}, bob)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := uint(parseBody(t, rec)["order"].(map[string]interface{})["id"].(float64))
	path := fmt.Sprintf("/api/v1/orders/%d", orderID)

	rec = doJSON(t, r, http.MethodGet, path, nil, bob)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, path, nil, carol)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, r, http.MethodGet, path, nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateOrderMarksPaid(t *testing.T) {
	r := newTestRouter(t)
	admin := register(t, r, "alice", "alice@example.com")
	bob := register(t, r, "bob", "bob@example.com")
	id := createMeal(t, r, admin, "pepperoni", 10)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"items":       []map[string]interface{}{{"meal": id, "amount": 1}},
		"tax":         5,
		"shippingFee": 3,
	}, bob)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := uint(parseBody(t, rec)["order"].(map[string]interface{})["id"].(float64))
	path := fmt.Sprintf("/api/v1/orders/%d", orderID)

	rec = doJSON(t, r, http.MethodPatch, path, map[string]string{"paymentIntentId": "pi_12345"}, bob)
	require.Equal(t, http.StatusOK, rec.Code)
	order := parseBody(t, rec)["order"].(map[string]interface{})
	require.Equal(t, "paid", order["status"])
	require.Equal(t, "pi_12345", order["paymentIntentId"])

	// paid is terminal
	rec = doJSON(t, r, http.MethodPatch, path, map[string]string{"paymentIntentId": "pi_67890"}, bob)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderListings(t *testing.T) {
	r := newTestRouter(t)
	admin := register(t, r, "alice", "alice@example.com")
	bob := register(t, r, "bob", "bob@example.com")
	carol := register(t, r, "carol", "carol@example.com")
	id := createMeal(t, r, admin, "pepperoni", 10)

	order := map[string]interface{}{
		"items":       []map[string]interface{}{{"meal": id, "amount": 1}},
		"tax":         5,
		"shippingFee": 3,
	}
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/v1/orders", order, bob).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/v1/orders", order, carol).Code)

	// admin-only list-all
	rec := doJSON(t, r, http.MethodGet, "/api/v1/orders", nil, bob)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/orders", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(2), parseBody(t, rec)["count"])

	// current-user filter
	rec = doJSON(t, r, http.MethodGet, "/api/v1/orders/showMe", nil, bob)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(1), parseBody(t, rec)["count"])
}
