package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pcof-site-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	first := &model.DonationRecord{
		ID:            "cs_1",
		DonorEmail:    "jane@example.com",
		AmountTotal:   150000,
		Currency:      "kes",
		Metadata:      map[string]string{"donor_name": "Jane", "frequency": "one_time"},
		PaymentStatus: "paid",
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.AppendDonation(ctx, first))

	second := &model.DonationRecord{ID: "cs_2", AmountTotal: 500, Currency: "usd"}
	require.NoError(t, s.AppendDonation(ctx, second))

	recs, err := s.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// most-recent-first, fields preserved exactly
	assert.Equal(t, "cs_2", recs[0].ID)
	assert.Equal(t, first, recs[1])
}

func TestHasDonation(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	ok, err := s.HasDonation(ctx, "cs_1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.AppendDonation(ctx, &model.DonationRecord{ID: "cs_1"}))

	ok, err = s.HasDonation(ctx, "cs_1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "donations.json"), []byte("{not json"), 0o644))

	s := New(dir)
	ctx := context.Background()

	recs, err := s.ListDonations(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// appending over a corrupt file starts a fresh collection
	require.NoError(t, s.AppendDonation(ctx, &model.DonationRecord{ID: "cs_1"}))
	recs, err = s.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestRSVPPartitionedPerEvent(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.AppendRSVP(ctx, "evt_1", &model.RSVP{ID: "rsvp_1", Name: "Jane", Email: "jane@example.com"}))
	require.NoError(t, s.AppendRSVP(ctx, "evt_2", &model.RSVP{ID: "rsvp_2", Name: "John", Email: "john@example.com"}))

	one, err := s.ListRSVPs(ctx, "evt_1")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "rsvp_1", one[0].ID)

	two, err := s.ListRSVPs(ctx, "evt_2")
	require.NoError(t, err)
	require.Len(t, two, 1)

	none, err := s.ListRSVPs(ctx, "evt_3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddSubscriberDeduplicates(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	added, err := s.AddSubscriber(ctx, &model.Subscriber{ID: "s1", Email: "jane@example.com"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddSubscriber(ctx, &model.Subscriber{ID: "s2", Email: "jane@example.com"})
	require.NoError(t, err)
	assert.False(t, added)

	subs, err := s.ListSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "s1", subs[0].ID)
}

func TestContactMessages(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.AppendContactMessage(ctx, &model.ContactMessage{ID: "m1", Name: "Jane", Email: "jane@example.com", Message: "hello"}))
	require.NoError(t, s.AppendContactMessage(ctx, &model.ContactMessage{ID: "m2", Name: "John", Email: "john@example.com", Message: "hi"}))

	msgs, err := s.ListContactMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m2", msgs[0].ID)
}
