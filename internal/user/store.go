package user

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUserNotFound = errors.New("user account not found")
)

// Account is the slice of a user document the dispatcher cares about.
// DeliveryToken is empty when the user has no registered device.
type Account struct {
	ID            string
	Email         string
	DeliveryToken string
}

// Store reads and updates user accounts.
type Store interface {
	GetUser(ctx context.Context, userID string) (Account, error)
	FindUserByEmail(ctx context.Context, email string) (Account, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	UpdateDeliveryToken(ctx context.Context, userID, token string) error
	ClearDeliveryToken(ctx context.Context, userID string) error
}

// FirestoreStore implements Store against the users collection.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) col() *firestore.CollectionRef {
	return s.client.Collection("users")
}

func (s *FirestoreStore) GetUser(ctx context.Context, userID string) (Account, error) {
	snap, err := s.col().Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Account{}, ErrUserNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	return docToAccount(snap), nil
}

// FindUserByEmail returns the first account matching the email. At most one
// match is expected; extras are ignored.
func (s *FirestoreStore) FindUserByEmail(ctx context.Context, email string) (Account, error) {
	it := s.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return Account{}, ErrUserNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("failed to query user by email: %w", err)
	}

	return docToAccount(snap), nil
}

// ListUserIDs enumerates every user document ID. Used by the offer inbox
// fan-out; only the IDs are fetched.
func (s *FirestoreStore) ListUserIDs(ctx context.Context) ([]string, error) {
	it := s.col().Select().Documents(ctx)
	defer it.Stop()

	var ids []string
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		ids = append(ids, snap.Ref.ID)
	}

	return ids, nil
}

func (s *FirestoreStore) UpdateDeliveryToken(ctx context.Context, userID, token string) error {
	_, err := s.col().Doc(userID).Update(ctx, []firestore.Update{
		{Path: "deliveryToken", Value: token},
	})
	if status.Code(err) == codes.NotFound {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update delivery token: %w", err)
	}

	return nil
}

func (s *FirestoreStore) ClearDeliveryToken(ctx context.Context, userID string) error {
	_, err := s.col().Doc(userID).Update(ctx, []firestore.Update{
		{Path: "deliveryToken", Value: firestore.Delete},
	})
	if status.Code(err) == codes.NotFound {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to clear delivery token: %w", err)
	}

	return nil
}

func docToAccount(snap *firestore.DocumentSnapshot) Account {
	data := snap.Data()

	account := Account{ID: snap.Ref.ID}
	if v, ok := data["email"].(string); ok {
		account.Email = v
	}
	if v, ok := data["deliveryToken"].(string); ok {
		account.DeliveryToken = v
	}

	return account
}
