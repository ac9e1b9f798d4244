package market

// Offer is a seller listing created by the mobile app. Every field except the
// document ID may be absent; callers get zero values and render empty strings.
type Offer struct {
	ID          string
	Title       string
	Description string
	Price       *float64
}

// DecodeOffer converts raw Firestore document data into an Offer. The client
// writes these documents without schema enforcement, so each field is decoded
// defensively with a documented default.
func DecodeOffer(id string, data map[string]interface{}) Offer {
	return Offer{
		ID:          id,
		Title:       asString(data["title"]),
		Description: asString(data["description"]),
		Price:       asFloatPtr(data["price"]),
	}
}
