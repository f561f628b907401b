package model

import "time"

// DonationRecord is written exactly once per completed checkout session, by
// the webhook reconciler, and never mutated afterwards. The ID is the
// provider-issued session id. AmountTotal is in minor currency units.
type DonationRecord struct {
	ID            string            `json:"id" gorm:"primaryKey;size:128;not null"`
	DonorEmail    string            `json:"customer_email,omitempty" gorm:"size:255"`
	AmountTotal   int64             `json:"amount_total" gorm:"not null"`
	Currency      string            `json:"currency" gorm:"size:8"`
	Metadata      map[string]string `json:"metadata,omitempty" gorm:"serializer:json"`
	PaymentStatus string            `json:"payment_status,omitempty" gorm:"size:32"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// RSVP is an event registration, independent of payment. The event id lives
// in the storage partition (one collection per event), so it is not part of
// the serialized entry.
type RSVP struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64;not null"`
	EventID   string    `json:"-" gorm:"size:64;index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

type Subscriber struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
