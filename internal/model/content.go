package model

// Content types are owned by the content files under the data dir and are
// read-only for this service. Timestamps stay as the ISO-8601 strings the
// files carry; absent fields stay empty.

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	StartsAt    string   `json:"startsAt,omitempty"`
	EndsAt      string   `json:"endsAt,omitempty"`
	Address     string   `json:"address,omitempty"`
	Location    string   `json:"location,omitempty"`
	LocationURL string   `json:"locationUrl,omitempty"`
	Host        string   `json:"host,omitempty"`
	Online      bool     `json:"online,omitempty"`
	OnlineURL   string   `json:"onlineUrl,omitempty"`
	Capacity    int      `json:"capacity,omitempty"` // advisory, never enforced
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type Church struct {
	ID           string `json:"id"`
	Slug         string `json:"slug,omitempty"`
	Name         string `json:"name"`
	Tagline      string `json:"tagline,omitempty"`
	Address      string `json:"address,omitempty"`
	Location     string `json:"location,omitempty"`
	LocationURL  string `json:"locationUrl,omitempty"`
	Website      string `json:"website,omitempty"`
	ServiceTimes string `json:"serviceTimes,omitempty"`
	Description  string `json:"description,omitempty"`
	Pastor       string `json:"pastor,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

type Sermon struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Speaker     string   `json:"speaker,omitempty"`
	Date        string   `json:"date,omitempty"`
	MediaURL    string   `json:"mediaUrl,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type Leader struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Photo string `json:"photo,omitempty"`
}
