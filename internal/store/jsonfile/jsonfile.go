// Package jsonfile implements the record store on the site's JSON data files:
// donations.json, rsvps_<eventID>.json, contact_messages.json and
// subscribers.json under the data dir, each a most-recent-first array.
//
// Read-modify-write on a file is a critical section, so writes are serialized
// with one mutex per collection file. Readers go without locking and tolerate
// a missing or momentarily half-written file as an empty collection.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pcof-site-backend/internal/model"
)

type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func readCollection[T any](path string) []T {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func writeCollection(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

// prepend runs the read-modify-write cycle for one collection file under its
// lock, inserting the new record at the front.
func prepend[T any](s *Store, name string, rec T) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	path := filepath.Join(s.dir, name)
	all := readCollection[T](path)
	all = append([]T{rec}, all...)
	return writeCollection(path, all)
}

const donationsFile = "donations.json"

func rsvpFile(eventID string) string {
	return fmt.Sprintf("rsvps_%s.json", eventID)
}

func (s *Store) AppendDonation(ctx context.Context, rec *model.DonationRecord) error {
	return prepend(s, donationsFile, rec)
}

func (s *Store) ListDonations(ctx context.Context) ([]*model.DonationRecord, error) {
	return readCollection[*model.DonationRecord](filepath.Join(s.dir, donationsFile)), nil
}

func (s *Store) HasDonation(ctx context.Context, id string) (bool, error) {
	for _, rec := range readCollection[*model.DonationRecord](filepath.Join(s.dir, donationsFile)) {
		if rec.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) AppendRSVP(ctx context.Context, eventID string, entry *model.RSVP) error {
	entry.EventID = eventID
	return prepend(s, rsvpFile(eventID), entry)
}

func (s *Store) ListRSVPs(ctx context.Context, eventID string) ([]*model.RSVP, error) {
	return readCollection[*model.RSVP](filepath.Join(s.dir, rsvpFile(eventID))), nil
}

const messagesFile = "contact_messages.json"

func (s *Store) AppendContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	return prepend(s, messagesFile, msg)
}

func (s *Store) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	return readCollection[*model.ContactMessage](filepath.Join(s.dir, messagesFile)), nil
}

const subscribersFile = "subscribers.json"

func (s *Store) AddSubscriber(ctx context.Context, sub *model.Subscriber) (bool, error) {
	l := s.lockFor(subscribersFile)
	l.Lock()
	defer l.Unlock()

	path := filepath.Join(s.dir, subscribersFile)
	all := readCollection[*model.Subscriber](path)
	for _, existing := range all {
		if existing.Email == sub.Email {
			return false, nil
		}
	}
	all = append([]*model.Subscriber{sub}, all...)
	if err := writeCollection(path, all); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	return readCollection[*model.Subscriber](filepath.Join(s.dir, subscribersFile)), nil
}
