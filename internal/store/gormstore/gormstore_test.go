package gormstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"pcof-site-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return s
}

func TestDonationOrderAndFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendDonation(ctx, &model.DonationRecord{
		ID:          "cs_1",
		AmountTotal: 150000,
		Currency:    "kes",
		Metadata:    map[string]string{"frequency": "one_time"},
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, s.AppendDonation(ctx, &model.DonationRecord{
		ID:          "cs_2",
		AmountTotal: 500,
		Currency:    "usd",
		CreatedAt:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}))

	recs, err := s.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "cs_2", recs[0].ID)
	assert.Equal(t, int64(150000), recs[1].AmountTotal)
	assert.Equal(t, "kes", recs[1].Currency)
	assert.Equal(t, map[string]string{"frequency": "one_time"}, recs[1].Metadata)

	seen, err := s.HasDonation(ctx, "cs_1")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = s.HasDonation(ctx, "cs_404")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestRSVPPartition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendRSVP(ctx, "evt_1", &model.RSVP{ID: "rsvp_1", Name: "Jane", Email: "jane@example.com", CreatedAt: time.Now()}))
	require.NoError(t, s.AppendRSVP(ctx, "evt_2", &model.RSVP{ID: "rsvp_2", Name: "John", Email: "john@example.com", CreatedAt: time.Now()}))

	entries, err := s.ListRSVPs(ctx, "evt_1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rsvp_1", entries[0].ID)
	assert.Equal(t, "evt_1", entries[0].EventID)
}

func TestAddSubscriberDeduplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddSubscriber(ctx, &model.Subscriber{ID: "s1", Email: "jane@example.com", CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddSubscriber(ctx, &model.Subscriber{ID: "s2", Email: "jane@example.com", CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.False(t, added)

	subs, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
}
