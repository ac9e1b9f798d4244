package messaging

import "context"

// Push is a gateway-agnostic notification payload. The dispatcher builds one
// of these per event; the FCM sender translates it into the wire format.
type Push struct {
	Title string
	Body  string

	// Data is the structured payload forwarded to the client for routing.
	// FCM only carries string values, so everything is stringified upstream.
	Data map[string]string

	// Android delivery hints.
	ChannelID string
	Color     string
	Sound     string

	// Badge sets the iOS app icon badge count. Nil leaves it untouched.
	Badge *int
}

// Sender is the push-messaging gateway. Both operations return the opaque
// message ID assigned by the gateway.
type Sender interface {
	SendToToken(ctx context.Context, token string, push Push) (string, error)
	SendToTopic(ctx context.Context, topic string, push Push) (string, error)
}
