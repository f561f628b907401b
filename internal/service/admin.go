package service

import (
	"context"
	"crypto/subtle"
	"time"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/auth"
	"pcof-site-backend/internal/config"
	"pcof-site-backend/internal/content"
	"pcof-site-backend/internal/dto"
	"pcof-site-backend/internal/store"
)

const tokenValidity = 12 * time.Hour

type AdminService interface {
	// Login checks the credentials against the configured admin account and
	// issues a signed token.
	Login(ctx context.Context, email, password string) (string, error)
	// Stats computes the dashboard headline counts.
	Stats(ctx context.Context) (*dto.Stats, error)
}

type adminServiceImpl struct {
	cfg     *config.Admin
	content *content.Repository
	store   store.RecordStore
}

func NewAdminService(cfg *config.Admin, contentRepo *content.Repository, recordStore store.RecordStore) AdminService {
	return &adminServiceImpl{
		cfg:     cfg,
		content: contentRepo,
		store:   recordStore,
	}
}

func (s *adminServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	if s.cfg.Email == "" || s.cfg.Pass == "" || s.cfg.JWTSecret == "" {
		return "", apperr.New(apperr.ErrProviderNotConfigured, "admin sign-in not configured")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Pass)) == 1
	if !emailOK || !passOK {
		return "", apperr.New(apperr.ErrUnauthorized, "invalid credentials")
	}

	return auth.GenerateToken(email, []byte(s.cfg.JWTSecret), tokenValidity)
}

func (s *adminServiceImpl) Stats(ctx context.Context) (*dto.Stats, error) {
	donations, err := s.store.ListDonations(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorageError, "could not count donations", err)
	}

	return &dto.Stats{
		Churches:  len(s.content.Churches()),
		Sermons:   len(s.content.Sermons()),
		Events:    len(s.content.Events()),
		Donations: len(donations),
	}, nil
}
