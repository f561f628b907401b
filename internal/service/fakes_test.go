package service

import (
	"context"

	"pcof-site-backend/internal/client"
	"pcof-site-backend/internal/model"
)

// memStore is an in-memory RecordStore with injectable failures.
type memStore struct {
	donations   []*model.DonationRecord
	rsvps       map[string][]*model.RSVP
	messages    []*model.ContactMessage
	subscribers []*model.Subscriber

	appendErr error
}

func newMemStore() *memStore {
	return &memStore{rsvps: make(map[string][]*model.RSVP)}
}

func (m *memStore) AppendDonation(ctx context.Context, rec *model.DonationRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.donations = append([]*model.DonationRecord{rec}, m.donations...)
	return nil
}

func (m *memStore) ListDonations(ctx context.Context) ([]*model.DonationRecord, error) {
	return m.donations, nil
}

func (m *memStore) HasDonation(ctx context.Context, id string) (bool, error) {
	for _, rec := range m.donations {
		if rec.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) AppendRSVP(ctx context.Context, eventID string, entry *model.RSVP) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	entry.EventID = eventID
	m.rsvps[eventID] = append([]*model.RSVP{entry}, m.rsvps[eventID]...)
	return nil
}

func (m *memStore) ListRSVPs(ctx context.Context, eventID string) ([]*model.RSVP, error) {
	return m.rsvps[eventID], nil
}

func (m *memStore) AppendContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.messages = append([]*model.ContactMessage{msg}, m.messages...)
	return nil
}

func (m *memStore) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	return m.messages, nil
}

func (m *memStore) AddSubscriber(ctx context.Context, sub *model.Subscriber) (bool, error) {
	if m.appendErr != nil {
		return false, m.appendErr
	}
	for _, existing := range m.subscribers {
		if existing.Email == sub.Email {
			return false, nil
		}
	}
	m.subscribers = append([]*model.Subscriber{sub}, m.subscribers...)
	return true, nil
}

func (m *memStore) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	return m.subscribers, nil
}

// fakePayments records the params it was called with and returns canned
// results.
type fakePayments struct {
	configured        bool
	webhookConfigured bool

	lastParams  *client.CheckoutParams
	redirectURL string
	createErr   error

	verifyEvent *client.WebhookEvent
	verifyErr   error
}

func (f *fakePayments) Configured() bool { return f.configured }

func (f *fakePayments) WebhookConfigured() bool { return f.webhookConfigured }

func (f *fakePayments) CreateCheckoutSession(ctx context.Context, p *client.CheckoutParams) (string, error) {
	f.lastParams = p
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.redirectURL, nil
}

func (f *fakePayments) VerifyWebhook(payload []byte, signatureHeader string) (*client.WebhookEvent, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verifyEvent, nil
}
