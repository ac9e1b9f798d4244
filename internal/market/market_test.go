package market

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeOffer(t *testing.T) {
	offer := DecodeOffer("offer-1", map[string]interface{}{
		"title":       "Tomatoes",
		"description": "Fresh batch",
		"price":       int64(5),
	})

	require.Equal(t, "offer-1", offer.ID)
	require.Equal(t, "Tomatoes", offer.Title)
	require.Equal(t, "Fresh batch", offer.Description)
	require.NotNil(t, offer.Price)
	require.Equal(t, float64(5), *offer.Price)
}

func TestDecodeOfferMissingFields(t *testing.T) {
	offer := DecodeOffer("offer-2", map[string]interface{}{})

	require.Equal(t, "", offer.Title)
	require.Equal(t, "", offer.Description)
	require.Nil(t, offer.Price)
}

func TestDecodeOfferStringPrice(t *testing.T) {
	offer := DecodeOffer("offer-3", map[string]interface{}{
		"price": "12.5",
	})

	require.NotNil(t, offer.Price)
	require.Equal(t, 12.5, *offer.Price)
}

func TestDecodeFarmerOrder(t *testing.T) {
	order := DecodeFarmerOrder("farmer-1", "order-1", map[string]interface{}{
		"buyerName":  "Sara",
		"buyerPhone": "0501234567",
		"cartItems": []interface{}{
			map[string]interface{}{"itemPrice": int64(5), "totalPrice": int64(10)},
			map[string]interface{}{"itemPrice": 7.5, "totalPrice": float64(15)},
		},
		"isCustomProductOrder":    true,
		"isAdminNotificationFlag": false,
	})

	require.Equal(t, "order-1", order.ID)
	require.Equal(t, "farmer-1", order.FarmerID)
	require.Equal(t, "Sara", order.BuyerName)
	require.Equal(t, "0501234567", order.BuyerPhone)
	require.Equal(t, 2, order.ItemCount())
	require.Equal(t, float64(25), order.Total())
	require.True(t, order.IsCustomProductOrder)
	require.False(t, order.IsAdminNotification)
}

func TestDecodeFarmerOrderDefaults(t *testing.T) {
	order := DecodeFarmerOrder("farmer-1", "order-2", map[string]interface{}{})

	require.Equal(t, DefaultBuyerName, order.BuyerName)
	require.Equal(t, "", order.BuyerPhone)
	require.Equal(t, 0, order.ItemCount())
	require.Equal(t, float64(0), order.Total())
	require.False(t, order.IsCustomProductOrder)
	require.False(t, order.IsAdminNotification)
}

func TestFarmerOrderTotalIgnoresMissingPrices(t *testing.T) {
	order := DecodeFarmerOrder("farmer-1", "order-3", map[string]interface{}{
		"cartItems": []interface{}{
			map[string]interface{}{"totalPrice": int64(10)},
			map[string]interface{}{}, // missing totalPrice contributes 0
			map[string]interface{}{"totalPrice": "not a number"},
			"not even a map",
			map[string]interface{}{"totalPrice": 15.5},
		},
	})

	require.Equal(t, 5, order.ItemCount())
	require.Equal(t, 25.5, order.Total())
}

func TestDecodeFarmerOrderCartNotAList(t *testing.T) {
	order := DecodeFarmerOrder("farmer-1", "order-4", map[string]interface{}{
		"cartItems": "oops",
	})

	require.Equal(t, 0, order.ItemCount())
	require.Equal(t, float64(0), order.Total())
}
