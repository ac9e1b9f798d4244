package dispatcher

import (
	"fmt"
	"strconv"

	"github.com/mazraa/mazra-BE/internal/market"
	"github.com/mazraa/mazra-BE/internal/messaging"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/mazraa/mazra-BE/internal/util"
)

// clickAction is the intent filter the Flutter client listens on.
const clickAction = "FLUTTER_NOTIFICATION_CLICK"

// Notification channels and accent colors, mirrored in the Android client.
const (
	channelOrders = "farmer_orders"
	channelAdmin  = "admin_alerts"

	colorCustomOrder = "#E67E22"
	colorAdmin       = "#C0392B"

	defaultSound = "default"

	screenFarmerOrders = "farmer_orders"

	// offerTitleLimit caps the offer title inside the push headline; the data
	// payload keeps the full title.
	offerTitleLimit = 60
)

func buildOfferPush(offer market.Offer) messaging.Push {
	return messaging.Push{
		Title: fmt.Sprintf("New offer: %s", util.TruncateContent(offer.Title, offerTitleLimit)),
		Body:  offer.Description,
		Data: map[string]string{
			"productId":    offer.ID,
			"title":        offer.Title,
			"price":        util.PriceString(offer.Price),
			"click_action": clickAction,
			"type":         string(notification.KindOffer),
		},
	}
}

func buildOrderPush(order market.FarmerOrder) (messaging.Push, notification.Kind) {
	kind := notification.KindFarmerOrder
	title := "New order received"
	color := ""
	if order.IsCustomProductOrder && order.IsAdminNotification {
		kind = notification.KindAdminCustomOrder
		title = "New custom product order"
		color = colorCustomOrder
	}

	badge := 1
	return messaging.Push{
		Title: title,
		Body: fmt.Sprintf("%s placed an order: %d items, %s total",
			order.BuyerName, order.ItemCount(), util.FormatMoney(order.Total())),
		Data:      orderData(order, kind),
		ChannelID: channelOrders,
		Color:     color,
		Sound:     defaultSound,
		Badge:     &badge,
	}, kind
}

func buildAdminPush(order market.FarmerOrder) messaging.Push {
	badge := 1
	return messaging.Push{
		Title: "New custom product order!",
		Body: fmt.Sprintf("%s ordered %d custom items, %s total",
			order.BuyerName, order.ItemCount(), util.FormatMoney(order.Total())),
		Data:      orderData(order, notification.KindAdminCustomOrder),
		ChannelID: channelAdmin,
		Color:     colorAdmin,
		Sound:     defaultSound,
		Badge:     &badge,
	}
}

func orderData(order market.FarmerOrder, kind notification.Kind) map[string]string {
	return map[string]string{
		"orderId":              order.ID,
		"farmerId":             order.FarmerID,
		"buyerName":            order.BuyerName,
		"buyerPhone":           order.BuyerPhone,
		"itemCount":            strconv.Itoa(order.ItemCount()),
		"totalPrice":           strconv.FormatFloat(order.Total(), 'f', -1, 64),
		"isCustomProductOrder": strconv.FormatBool(order.IsCustomProductOrder),
		"click_action":         clickAction,
		"type":                 string(kind),
		"screen":               screenFarmerOrders,
	}
}
