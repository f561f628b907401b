package service

import (
	"context"

	"pcof-site-backend/internal/content"
	"pcof-site-backend/internal/model"
)

type ContentService interface {
	Churches(ctx context.Context) []*model.Church
	ChurchBySlug(ctx context.Context, slug string) (*model.Church, error)
	Sermons(ctx context.Context) []*model.Sermon
	Events(ctx context.Context) []*model.Event
	EventByID(ctx context.Context, id string) (*model.Event, error)
	Leaders(ctx context.Context) []*model.Leader
}

type contentServiceImpl struct {
	repo *content.Repository
}

func NewContentService(repo *content.Repository) ContentService {
	return &contentServiceImpl{repo: repo}
}

func (s *contentServiceImpl) Churches(ctx context.Context) []*model.Church {
	return s.repo.Churches()
}

func (s *contentServiceImpl) ChurchBySlug(ctx context.Context, slug string) (*model.Church, error) {
	return s.repo.ChurchBySlug(slug)
}

func (s *contentServiceImpl) Sermons(ctx context.Context) []*model.Sermon {
	return s.repo.Sermons()
}

func (s *contentServiceImpl) Events(ctx context.Context) []*model.Event {
	return s.repo.Events()
}

func (s *contentServiceImpl) EventByID(ctx context.Context, id string) (*model.Event, error) {
	return s.repo.EventByID(id)
}

func (s *contentServiceImpl) Leaders(ctx context.Context) []*model.Leader {
	return s.repo.Leaders()
}
