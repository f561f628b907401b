package dto

import "encoding/json"

// DonationIntent is the checkout form payload. It is validated before use and
// never stored. Amount arrives as a JSON number or string in major currency
// units.
type DonationIntent struct {
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	Frequency   string      `json:"frequency"` // one_time (default) or monthly
	Donor       Donor       `json:"donor"`
	Description string      `json:"description"`
}

type Donor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CheckoutResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

type RSVPRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	// Website is the honeypot field: humans never fill it.
	Website string `json:"website"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Stats struct {
	Churches  int `json:"churches"`
	Sermons   int `json:"sermons"`
	Events    int `json:"events"`
	Donations int `json:"donations"`
}
