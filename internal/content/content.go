// Package content reads the site's reference data (events, churches, sermons,
// leaders) from the JSON files under the data dir. The files are owned by the
// content pipeline; this service only reads them.
package content

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/model"
)

type Repository struct {
	dir string
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// readCollection tolerates a missing or unreadable file as an empty list, the
// same way the pages render an empty section when content is absent.
func readCollection[T any](dir, name string) []T {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func (r *Repository) Events() []*model.Event {
	return readCollection[*model.Event](r.dir, "events.json")
}

func (r *Repository) EventByID(id string) (*model.Event, error) {
	for _, ev := range r.Events() {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, apperr.New(apperr.ErrNotFound, "event not found")
}

func (r *Repository) Churches() []*model.Church {
	return readCollection[*model.Church](r.dir, "churches.json")
}

func (r *Repository) ChurchBySlug(slug string) (*model.Church, error) {
	for _, ch := range r.Churches() {
		if ch.Slug == slug || ch.ID == slug {
			return ch, nil
		}
	}
	return nil, apperr.New(apperr.ErrNotFound, "church not found")
}

func (r *Repository) Sermons() []*model.Sermon {
	return readCollection[*model.Sermon](r.dir, "sermons.json")
}

func (r *Repository) Leaders() []*model.Leader {
	return readCollection[*model.Leader](r.dir, "leaders.json")
}
