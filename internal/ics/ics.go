// Package ics renders a single-event iCalendar document for download.
// Rendering is pure: same event and clock, same bytes.
package ics

import (
	"regexp"
	"strings"
	"time"

	"pcof-site-backend/internal/model"
)

const timestampLayout = "20060102T150405Z"

// Calendar is a rendered document plus the download filename.
type Calendar struct {
	Body     string
	Filename string
}

var whitespace = regexp.MustCompile(`\s+`)

// escapeText applies the iCalendar TEXT escaping rules: commas and semicolons
// are backslash-escaped and newlines become literal \n sequences.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// formatTimestamp parses an ISO-8601 instant and renders it as a UTC
// iCalendar timestamp. Unparseable input yields "" and the field is omitted.
func formatTimestamp(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

// Filename slugs the event title: whitespace collapses to underscores, and an
// absent title falls back to "event".
func filename(title string) string {
	slug := whitespace.ReplaceAllString(strings.TrimSpace(title), "_")
	if slug == "" {
		slug = "event"
	}
	return slug + ".ics"
}

func Render(ev *model.Event, now time.Time) *Calendar {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//PCOF//EN",
		"BEGIN:VEVENT",
		"UID:event-" + ev.ID + "@pcof.local",
		"SUMMARY:" + escapeText(strings.ReplaceAll(ev.Title, "\n", " ")),
		"DTSTAMP:" + now.UTC().Format(timestampLayout),
	}
	if start := formatTimestamp(ev.StartsAt); start != "" {
		lines = append(lines, "DTSTART:"+start)
	}
	if end := formatTimestamp(ev.EndsAt); end != "" {
		lines = append(lines, "DTEND:"+end)
	}
	if ev.Location != "" {
		lines = append(lines, "LOCATION:"+escapeText(ev.Location))
	}
	lines = append(lines,
		"DESCRIPTION:"+escapeText(ev.Description),
		"END:VEVENT",
		"END:VCALENDAR",
	)

	return &Calendar{
		Body:     strings.Join(lines, "\r\n"),
		Filename: filename(ev.Title),
	}
}
