package service

import (
	"context"
	"fmt"
	"time"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/content"
	"pcof-site-backend/internal/logging"
	"pcof-site-backend/internal/model"
	"pcof-site-backend/internal/store"
	"pcof-site-backend/internal/validate"
)

type RSVPService interface {
	// Submit validates and persists one registration for an existing event.
	// Capacity is advisory only and never enforced here.
	Submit(ctx context.Context, eventID, name, email string) (*model.RSVP, error)
	List(ctx context.Context, eventID string) ([]*model.RSVP, error)
}

type rsvpServiceImpl struct {
	events *content.Repository
	store  store.RecordStore
	logger logging.Logger
	now    func() time.Time
}

func NewRSVPService(events *content.Repository, recordStore store.RecordStore, logger logging.Logger) RSVPService {
	return &rsvpServiceImpl{
		events: events,
		store:  recordStore,
		logger: logger,
		now:    time.Now,
	}
}

func (s *rsvpServiceImpl) Submit(ctx context.Context, eventID, name, email string) (*model.RSVP, error) {
	if eventID == "" {
		return nil, apperr.New(apperr.ErrInvalidRequest, "missing event id")
	}
	name, err := validate.RequiredText(name, "name")
	if err != nil {
		return nil, err
	}
	email, err = validate.Email(email)
	if err != nil {
		return nil, err
	}

	if _, err := s.events.EventByID(eventID); err != nil {
		return nil, err
	}

	entry := &model.RSVP{
		ID:        fmt.Sprintf("rsvp_%d", s.now().UnixMilli()),
		Name:      name,
		Email:     email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.AppendRSVP(ctx, eventID, entry); err != nil {
		s.logger.Error(ctx, "persist rsvp", "event_id", eventID, "error", err)
		return nil, apperr.Wrap(apperr.ErrStorageError, "could not save RSVP", err)
	}

	s.logger.Info(ctx, "recorded rsvp", "event_id", eventID, "rsvp_id", entry.ID)
	return entry, nil
}

func (s *rsvpServiceImpl) List(ctx context.Context, eventID string) ([]*model.RSVP, error) {
	entries, err := s.store.ListRSVPs(ctx, eventID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorageError, "could not list RSVPs", err)
	}
	return entries, nil
}
