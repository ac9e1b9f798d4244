package dispatcher

import (
	"github.com/mazraa/mazra-BE/internal/messaging"
	"github.com/mazraa/mazra-BE/internal/notification"
	"github.com/mazraa/mazra-BE/internal/user"
	"github.com/mazraa/mazra-BE/internal/util"
	"github.com/mazraa/mazra-BE/internal/worker"
)

// Mailer sends the optional email copy of an admin escalation.
type Mailer interface {
	SendOrderAlert(to, subject, body string) error
}

// Dispatcher turns Firestore document-created events into push notifications
// and inbox records. All clients are injected and the dispatcher holds no
// global state. Every handler swallows its own errors, so the event source is
// never asked to re-deliver.
type Dispatcher struct {
	sender      messaging.Sender
	users       user.Store
	inboxes     notification.Store
	distributor worker.TaskDistributor
	mailer      Mailer // nil when SMTP is not configured
	config      util.Config
}

func NewDispatcher(
	sender messaging.Sender,
	users user.Store,
	inboxes notification.Store,
	distributor worker.TaskDistributor,
	mailer Mailer,
	config util.Config,
) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		users:       users,
		inboxes:     inboxes,
		distributor: distributor,
		mailer:      mailer,
		config:      config,
	}
}
