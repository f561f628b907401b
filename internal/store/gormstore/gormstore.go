// Package gormstore implements the record store on sqlite via gorm, for
// deployments that outgrow the JSON data files. Appends become row inserts,
// so concurrent writers no longer race a shared file.
package gormstore

import (
	"context"
	"errors"

	"pcof-site-backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func Open(databaseURL string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.DonationRecord{},
		&model.RSVP{},
		&model.ContactMessage{},
		&model.Subscriber{},
	); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) AppendDonation(ctx context.Context, rec *model.DonationRecord) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *Store) ListDonations(ctx context.Context) ([]*model.DonationRecord, error) {
	var recs []*model.DonationRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *Store) HasDonation(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.DonationRecord{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) AppendRSVP(ctx context.Context, eventID string, entry *model.RSVP) error {
	entry.EventID = eventID
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *Store) ListRSVPs(ctx context.Context, eventID string) ([]*model.RSVP, error) {
	var entries []*model.RSVP
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) AppendContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

func (s *Store) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	var msgs []*model.ContactMessage
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Store) AddSubscriber(ctx context.Context, sub *model.Subscriber) (bool, error) {
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(sub)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	var subs []*model.Subscriber
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
