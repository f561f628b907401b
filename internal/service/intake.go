package service

import (
	"context"
	"time"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/dto"
	"pcof-site-backend/internal/logging"
	"pcof-site-backend/internal/model"
	"pcof-site-backend/internal/store"
	"pcof-site-backend/internal/validate"

	"github.com/google/uuid"
)

type IntakeService interface {
	// SubmitContact persists one contact-form message. A filled honeypot
	// field is acknowledged as success without persisting anything, so bots
	// learn nothing.
	SubmitContact(ctx context.Context, req *dto.ContactRequest) error
	// Subscribe adds an email to the newsletter list; repeat subscriptions
	// are acknowledged without a second entry.
	Subscribe(ctx context.Context, email string) error
	ListMessages(ctx context.Context) ([]*model.ContactMessage, error)
	ListSubscribers(ctx context.Context) ([]*model.Subscriber, error)
}

type intakeServiceImpl struct {
	store  store.RecordStore
	logger logging.Logger
	now    func() time.Time
}

func NewIntakeService(recordStore store.RecordStore, logger logging.Logger) IntakeService {
	return &intakeServiceImpl{
		store:  recordStore,
		logger: logger,
		now:    time.Now,
	}
}

func (s *intakeServiceImpl) SubmitContact(ctx context.Context, req *dto.ContactRequest) error {
	name, err := validate.RequiredText(req.Name, "name")
	if err != nil {
		return err
	}
	email, err := validate.Email(req.Email)
	if err != nil {
		return err
	}
	message, err := validate.RequiredText(req.Message, "message")
	if err != nil {
		return err
	}

	if req.Website != "" {
		s.logger.Warn(ctx, "contact honeypot tripped", "email", email)
		return nil
	}

	msg := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.AppendContactMessage(ctx, msg); err != nil {
		s.logger.Error(ctx, "persist contact message", "message_id", msg.ID, "error", err)
		return apperr.Wrap(apperr.ErrStorageError, "could not save message", err)
	}
	return nil
}

func (s *intakeServiceImpl) Subscribe(ctx context.Context, email string) error {
	email, err := validate.Email(email)
	if err != nil {
		return err
	}

	added, err := s.store.AddSubscriber(ctx, &model.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error(ctx, "persist subscriber", "error", err)
		return apperr.Wrap(apperr.ErrStorageError, "could not subscribe", err)
	}
	if !added {
		s.logger.Info(ctx, "already subscribed", "email", email)
	}
	return nil
}

func (s *intakeServiceImpl) ListMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	msgs, err := s.store.ListContactMessages(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorageError, "could not list messages", err)
	}
	return msgs, nil
}

func (s *intakeServiceImpl) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	subs, err := s.store.ListSubscribers(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorageError, "could not list subscribers", err)
	}
	return subs, nil
}
