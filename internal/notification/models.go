package notification

import (
	"time"
)

// Kind labels what a notification is about; the client routes on it.
type Kind string

const (
	KindOffer            Kind = "offer"
	KindFarmerOrder      Kind = "farmer_order"
	KindAdminCustomOrder Kind = "admin_custom_order"
)

// Record is the persisted copy of a sent notification, keyed by the ID of the
// offer or order that produced it. Re-processing the same event overwrites
// the record rather than duplicating it.
type Record struct {
	RecipientID string            `firestore:"recipientID" json:"recipient_id"`
	ReferenceID string            `firestore:"referenceID" json:"reference_id"`
	Title       string            `firestore:"title" json:"title"`
	Message     string            `firestore:"message" json:"message"`
	Kind        Kind              `firestore:"type" json:"type"`
	Data        map[string]string `firestore:"data,omitempty" json:"data,omitempty"`
	IsRead      bool              `firestore:"isRead" json:"is_read"`
	CreatedAt   time.Time         `firestore:"createdAt,serverTimestamp" json:"created_at"`
}
