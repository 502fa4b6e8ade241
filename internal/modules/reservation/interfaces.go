package reservation

import (
	"context"

	"tenine/internal/modules/notification"
)

// Repository is the persistence sink. Insert-one is the only operation the
// flow uses.
type Repository interface {
	Create(ctx context.Context, rec *Reservation) error
}

// MailSender is the outbound mail relay.
type MailSender interface {
	Configured() bool
	Send(ctx context.Context, e notification.Email) error
}
