package messaging

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fcm "firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog/log"
)

// FCMSender sends pushes through Firebase Cloud Messaging.
type FCMSender struct {
	client *fcm.Client
}

func NewFCMSender(ctx context.Context, firebaseApp *firebase.App) (*FCMSender, error) {
	client, err := firebaseApp.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging client: %w", err)
	}

	return &FCMSender{client: client}, nil
}

func (s *FCMSender) SendToToken(ctx context.Context, token string, push Push) (string, error) {
	message := s.buildMessage(push)
	message.Token = token

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send push to token: %w", err)
	}

	log.Info().Str("messageID", messageID).Str("title", push.Title).Msg("push sent to device")
	return messageID, nil
}

func (s *FCMSender) SendToTopic(ctx context.Context, topic string, push Push) (string, error) {
	message := s.buildMessage(push)
	message.Topic = topic

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send push to topic %s: %w", topic, err)
	}

	log.Info().Str("messageID", messageID).Str("topic", topic).Str("title", push.Title).Msg("push sent to topic")
	return messageID, nil
}

func (s *FCMSender) buildMessage(push Push) *fcm.Message {
	message := &fcm.Message{
		Notification: &fcm.Notification{
			Title: push.Title,
			Body:  push.Body,
		},
		Data: push.Data,
		Android: &fcm.AndroidConfig{
			Priority: "high",
			Notification: &fcm.AndroidNotification{
				ChannelID: push.ChannelID,
				Color:     push.Color,
				Sound:     push.Sound,
			},
		},
	}

	if push.Badge != nil {
		message.APNS = &fcm.APNSConfig{
			Payload: &fcm.APNSPayload{
				Aps: &fcm.Aps{
					Badge: push.Badge,
					Sound: push.Sound,
				},
			},
		}
	}

	return message
}
