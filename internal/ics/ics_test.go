package ics

import (
	"strings"
	"testing"
	"time"

	"pcof-site-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

func sampleEvent() *model.Event {
	return &model.Event{
		ID:          "evt_1",
		Title:       "Easter Sunday Service",
		StartsAt:    "2025-04-20T09:00:00Z",
		EndsAt:      "2025-04-20T11:00:00Z",
		Location:    "Main Sanctuary, Nairobi",
		Description: "Join us;\nbring a friend",
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(sampleEvent(), frozen)
	b := Render(sampleEvent(), frozen)
	assert.Equal(t, a.Body, b.Body)
	assert.Equal(t, a.Filename, b.Filename)
}

func TestRenderFields(t *testing.T) {
	cal := Render(sampleEvent(), frozen)
	lines := strings.Split(cal.Body, "\r\n")

	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, lines, "UID:event-evt_1@pcof.local")
	assert.Contains(t, lines, "SUMMARY:Easter Sunday Service")
	assert.Contains(t, lines, "DTSTAMP:20250601T103000Z")
	assert.Contains(t, lines, "DTSTART:20250420T090000Z")
	assert.Contains(t, lines, "DTEND:20250420T110000Z")
	assert.Contains(t, lines, `LOCATION:Main Sanctuary\, Nairobi`)
	assert.Contains(t, lines, `DESCRIPTION:Join us\;\nbring a friend`)

	assert.Equal(t, "Easter_Sunday_Service.ics", cal.Filename)
}

func TestRenderOmitsAbsentTimes(t *testing.T) {
	ev := sampleEvent()
	ev.StartsAt = ""
	ev.EndsAt = "not-a-timestamp"

	cal := Render(ev, frozen)
	assert.NotContains(t, cal.Body, "DTSTART")
	assert.NotContains(t, cal.Body, "DTEND")
}

func TestFilenameFallback(t *testing.T) {
	ev := sampleEvent()
	ev.Title = "   "

	cal := Render(ev, frozen)
	require.Equal(t, "event.ics", cal.Filename)
}

func TestSummaryNewlinesBecomeSpaces(t *testing.T) {
	ev := sampleEvent()
	ev.Title = "Line one\nline two"

	cal := Render(ev, frozen)
	assert.Contains(t, cal.Body, "SUMMARY:Line one line two")
}
