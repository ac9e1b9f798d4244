package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrRecordNotFound = errors.New("notification record not found")

// Firestore batched writes cap at 500 operations; stay under it so a fan-out
// chunk always commits.
const maxBatchWrites = 400

// Store persists and serves notification inbox records.
type Store interface {
	SaveBroadcast(ctx context.Context, record Record) error
	SaveForUser(ctx context.Context, userID string, record Record) error
	FanOut(ctx context.Context, userIDs []string, record Record) error
	ListForUser(ctx context.Context, userID string, limit int) ([]Record, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, referenceID string) error
	PurgeRead(ctx context.Context, olderThan time.Time) (int, error)
}

// FirestoreStore keeps broadcast records in the top-level notifications
// collection and per-user records under users/{userID}/notifications.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) broadcastCol() *firestore.CollectionRef {
	return s.client.Collection("notifications")
}

func (s *FirestoreStore) inboxCol(userID string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(userID).Collection("notifications")
}

// SaveBroadcast writes one record visible to every client, keyed by the
// triggering event ID.
func (s *FirestoreStore) SaveBroadcast(ctx context.Context, record Record) error {
	_, err := s.broadcastCol().Doc(record.ReferenceID).Set(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to save broadcast notification: %w", err)
	}

	return nil
}

// SaveForUser writes a record into one user's inbox. Set overwrites, so a
// re-delivered event replaces the prior record instead of duplicating it.
func (s *FirestoreStore) SaveForUser(ctx context.Context, userID string, record Record) error {
	record.RecipientID = userID

	_, err := s.inboxCol(userID).Doc(record.ReferenceID).Set(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to save notification for user %s: %w", userID, err)
	}

	return nil
}

// FanOut writes the record into every listed user's inbox using batched
// writes. Each batch commits atomically; chunks are independent of each other.
func (s *FirestoreStore) FanOut(ctx context.Context, userIDs []string, record Record) error {
	batch := s.client.Batch()
	count := 0

	for _, userID := range userIDs {
		userRecord := record
		userRecord.RecipientID = userID
		batch.Set(s.inboxCol(userID).Doc(record.ReferenceID), userRecord)

		count++
		if count%maxBatchWrites == 0 {
			if _, err := batch.Commit(ctx); err != nil {
				return fmt.Errorf("failed to commit notification fan-out batch: %w", err)
			}
			batch = s.client.Batch()
		}
	}

	if count%maxBatchWrites != 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit notification fan-out batch: %w", err)
		}
	}

	return nil
}

// ListForUser returns the user's inbox, newest first.
func (s *FirestoreStore) ListForUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	q := s.inboxCol(userID).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	records := make([]Record, 0)
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
		}

		var record Record
		if err = snap.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to decode notification %s: %w", snap.Ref.ID, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *FirestoreStore) CountUnread(ctx context.Context, userID string) (int, error) {
	it := s.inboxCol(userID).Where("isRead", "==", false).Select().Documents(ctx)
	defer it.Stop()

	count := 0
	for {
		_, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to count unread notifications: %w", err)
		}
		count++
	}

	return count, nil
}

func (s *FirestoreStore) MarkRead(ctx context.Context, userID, referenceID string) error {
	_, err := s.inboxCol(userID).Doc(referenceID).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
	})
	if status.Code(err) == codes.NotFound {
		return ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}

// PurgeRead deletes read records older than the cutoff across every user's
// inbox and the broadcast collection. Returns the number of deleted records.
func (s *FirestoreStore) PurgeRead(ctx context.Context, olderThan time.Time) (int, error) {
	it := s.client.CollectionGroup("notifications").
		Where("isRead", "==", true).
		Where("createdAt", "<", olderThan).
		Documents(ctx)
	defer it.Stop()

	batch := s.client.Batch()
	deleted := 0

	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return deleted, fmt.Errorf("failed to scan notifications for purge: %w", err)
		}

		batch.Delete(snap.Ref)
		deleted++
		if deleted%maxBatchWrites == 0 {
			if _, err = batch.Commit(ctx); err != nil {
				return deleted, fmt.Errorf("failed to commit purge batch: %w", err)
			}
			batch = s.client.Batch()
		}
	}

	if deleted%maxBatchWrites != 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return deleted, fmt.Errorf("failed to commit purge batch: %w", err)
		}
	}

	return deleted, nil
}
