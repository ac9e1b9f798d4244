package watcher

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mazraa/mazra-BE/internal/dispatcher"
	"github.com/rs/zerolog/log"
)

const restartDelay = 5 * time.Second

// Watcher listens to Firestore snapshots and feeds document-created events to
// the dispatcher. It replaces the Cloud Functions trigger surface: the offers
// collection drives OfferDispatch and the farmer_orders collection group
// drives OrderDispatch.
type Watcher struct {
	client     *firestore.Client
	dispatcher *dispatcher.Dispatcher
}

func NewWatcher(client *firestore.Client, dispatcher *dispatcher.Dispatcher) *Watcher {
	return &Watcher{
		client:     client,
		dispatcher: dispatcher,
	}
}

// Start launches both listeners. They run until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.watch(ctx, "offers", w.client.Collection("offers").Query, w.handleOfferChange)
	go w.watch(ctx, "farmer_orders", w.client.CollectionGroup("farmer_orders").Query, w.handleOrderChange)
}

// watch runs a snapshot listener for one query, restarting it after stream
// errors. The first snapshot replays every pre-existing document and is
// skipped; only documents added afterwards count as created.
func (w *Watcher) watch(ctx context.Context, name string, query firestore.Query, handle func(ctx context.Context, doc *firestore.DocumentSnapshot)) {
	for {
		if ctx.Err() != nil {
			return
		}

		log.Info().Str("watch", name).Msg("starting snapshot listener")

		snapshots := query.Snapshots(ctx)
		initial := true

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				snapshots.Stop()
				if ctx.Err() != nil {
					return
				}
				log.Error().Err(err).Str("watch", name).Msg("snapshot stream failed, restarting")
				time.Sleep(restartDelay)
				break
			}

			if initial {
				initial = false
				continue
			}

			for _, change := range snapshot.Changes {
				if change.Kind != firestore.DocumentAdded {
					continue
				}
				handle(ctx, change.Doc)
			}
		}
	}
}

func (w *Watcher) handleOfferChange(ctx context.Context, doc *firestore.DocumentSnapshot) {
	w.dispatcher.HandleOfferCreated(ctx, doc.Ref.ID, doc.Data())
}

func (w *Watcher) handleOrderChange(ctx context.Context, doc *firestore.DocumentSnapshot) {
	// Path shape: users/{farmerID}/farmer_orders/{orderID}
	parent := doc.Ref.Parent.Parent
	if parent == nil {
		log.Warn().Str("path", doc.Ref.Path).Msg("farmer order outside a user document, skipping")
		return
	}

	w.dispatcher.HandleOrderCreated(ctx, parent.ID, doc.Ref.ID, doc.Data())
}
