// Package store defines the record store: append-only persistence for
// donations, RSVPs and form intake. Lists are most-recent-first. The contract
// is "append is durable and list reflects all prior appends"; whether that is
// a JSON file or a database row is up to the implementation.
package store

import (
	"context"

	"pcof-site-backend/internal/model"
)

type RecordStore interface {
	AppendDonation(ctx context.Context, rec *model.DonationRecord) error
	ListDonations(ctx context.Context) ([]*model.DonationRecord, error)
	// HasDonation reports whether a record with this session id was already
	// appended. The webhook reconciler uses it to absorb re-delivered events.
	HasDonation(ctx context.Context, id string) (bool, error)

	AppendRSVP(ctx context.Context, eventID string, entry *model.RSVP) error
	ListRSVPs(ctx context.Context, eventID string) ([]*model.RSVP, error)

	AppendContactMessage(ctx context.Context, msg *model.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error)

	// AddSubscriber reports false without error when the email is already
	// subscribed.
	AddSubscriber(ctx context.Context, sub *model.Subscriber) (bool, error)
	ListSubscribers(ctx context.Context) ([]*model.Subscriber, error)
}
