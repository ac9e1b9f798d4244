package market

// DefaultBuyerName is used when the checkout flow did not record a name.
const DefaultBuyerName = "buyer"

// CartItem is one line of a farmer order. Only the price fields matter to the
// dispatcher; anything else in the document is ignored.
type CartItem struct {
	ItemPrice  float64
	TotalPrice float64
}

// FarmerOrder is an order placed against one farmer, created by the checkout
// flow at users/{farmerID}/farmer_orders/{orderID}.
type FarmerOrder struct {
	ID                   string
	FarmerID             string
	BuyerName            string
	BuyerPhone           string
	CartItems            []CartItem
	IsCustomProductOrder bool
	IsAdminNotification  bool
}

// DecodeFarmerOrder converts raw Firestore document data into a FarmerOrder.
// Malformed cart entries are kept as zero-valued items so they contribute 0
// to the total rather than failing the whole order.
func DecodeFarmerOrder(farmerID, orderID string, data map[string]interface{}) FarmerOrder {
	order := FarmerOrder{
		ID:                   orderID,
		FarmerID:             farmerID,
		BuyerName:            asString(data["buyerName"]),
		BuyerPhone:           asString(data["buyerPhone"]),
		IsCustomProductOrder: asBool(data["isCustomProductOrder"]),
		IsAdminNotification:  asBool(data["isAdminNotificationFlag"]),
	}

	if order.BuyerName == "" {
		order.BuyerName = DefaultBuyerName
	}

	items, ok := data["cartItems"].([]interface{})
	if !ok {
		return order
	}
	for _, raw := range items {
		fields, ok := raw.(map[string]interface{})
		if !ok {
			order.CartItems = append(order.CartItems, CartItem{})
			continue
		}
		order.CartItems = append(order.CartItems, CartItem{
			ItemPrice:  asFloat(fields["itemPrice"]),
			TotalPrice: asFloat(fields["totalPrice"]),
		})
	}

	return order
}

// ItemCount returns the number of cart lines.
func (o FarmerOrder) ItemCount() int {
	return len(o.CartItems)
}

// Total sums the per-item totals. Items with a missing totalPrice contribute 0.
func (o FarmerOrder) Total() float64 {
	var total float64
	for _, item := range o.CartItems {
		total += item.TotalPrice
	}
	return total
}
