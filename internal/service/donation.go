package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/client"
	"pcof-site-backend/internal/dto"
	"pcof-site-backend/internal/logging"
	"pcof-site-backend/internal/model"
	"pcof-site-backend/internal/store"
	"pcof-site-backend/internal/validate"

	"github.com/shopspring/decimal"
)

const (
	defaultCurrency    = "kes"
	defaultDescription = "PCOF donation"

	eventCheckoutCompleted = "checkout.session.completed"
)

type DonationService interface {
	// CreateCheckout validates the intent, creates a hosted checkout session
	// and returns the provider's redirect URL. No record is persisted here;
	// only the webhook path writes donations.
	CreateCheckout(ctx context.Context, intent *dto.DonationIntent) (*dto.CheckoutResponse, error)
	// HandleWebhook verifies and reconciles one provider event. A returned
	// error must surface as a failing ack so the provider re-delivers.
	HandleWebhook(ctx context.Context, body []byte, signatureHeader string) error
	ListDonations(ctx context.Context) ([]*model.DonationRecord, error)
}

type donationServiceImpl struct {
	payments client.PaymentClient
	store    store.RecordStore
	baseURL  string
	logger   logging.Logger
	now      func() time.Time
}

func NewDonationService(
	payments client.PaymentClient,
	recordStore store.RecordStore,
	baseURL string,
	logger logging.Logger,
) DonationService {
	return &donationServiceImpl{
		payments: payments,
		store:    recordStore,
		baseURL:  baseURL,
		logger:   logger,
		now:      time.Now,
	}
}

// Currencies whose minor unit equals the major unit, per the provider's
// zero-decimal list. Everything else scales by 100.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true,
	"kmf": true, "krw": true, "mga": true, "pyg": true, "rwf": true,
	"ugx": true, "vnd": true, "vuv": true, "xaf": true, "xof": true,
	"xpf": true,
}

func minorUnits(amount decimal.Decimal, currency string) int64 {
	if zeroDecimalCurrencies[currency] {
		return amount.Round(0).IntPart()
	}
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (s *donationServiceImpl) CreateCheckout(ctx context.Context, intent *dto.DonationIntent) (*dto.CheckoutResponse, error) {
	amount, err := validate.Amount(intent.Amount.String())
	if err != nil {
		return nil, err
	}

	donorEmail := ""
	if strings.TrimSpace(intent.Donor.Email) != "" {
		donorEmail, err = validate.Email(intent.Donor.Email)
		if err != nil {
			return nil, err
		}
	}

	if !s.payments.Configured() {
		return nil, apperr.New(apperr.ErrProviderNotConfigured, "donations are currently unavailable")
	}

	currency := strings.ToLower(strings.TrimSpace(intent.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	frequency := intent.Frequency
	if frequency == "" {
		frequency = "one_time"
	}
	description := strings.TrimSpace(intent.Description)
	if description == "" {
		description = defaultDescription
	}

	redirectURL, err := s.payments.CreateCheckoutSession(ctx, &client.CheckoutParams{
		AmountMinor:   minorUnits(amount, currency),
		Currency:      currency,
		Description:   description,
		Recurring:     frequency == "monthly",
		CustomerEmail: donorEmail,
		Metadata: map[string]string{
			"donor_name": strings.TrimSpace(intent.Donor.Name),
			"frequency":  frequency,
		},
		SuccessURL: s.baseURL + "/donate/thank-you?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/donate?canceled=1",
	})
	if err != nil {
		// No retry here: session creation is not idempotent-safe, a fresh
		// form submission is the retry path.
		s.logger.Error(ctx, "create checkout session", "error", err)
		return nil, err
	}

	return &dto.CheckoutResponse{RedirectURL: redirectURL}, nil
}

// checkoutSessionPayload narrows the provider's session object to the fields
// a donation record keeps. Everything but the id is optional.
type checkoutSessionPayload struct {
	ID            string            `json:"id"`
	CustomerEmail string            `json:"customer_email"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
	PaymentStatus string            `json:"payment_status"`
}

func (s *donationServiceImpl) HandleWebhook(ctx context.Context, body []byte, signatureHeader string) error {
	if !s.payments.WebhookConfigured() {
		return apperr.New(apperr.ErrProviderNotConfigured, "webhook secret not configured")
	}

	event, err := s.payments.VerifyWebhook(body, signatureHeader)
	if err != nil {
		return err
	}

	if event.Type != eventCheckoutCompleted {
		s.logger.Info(ctx, "ignoring webhook event", "event_id", event.ID, "type", event.Type)
		return nil
	}

	var session checkoutSessionPayload
	if err := json.Unmarshal(event.Object, &session); err != nil || session.ID == "" {
		return apperr.New(apperr.ErrInvalidRequest, "webhook payload missing session id")
	}

	seen, err := s.store.HasDonation(ctx, session.ID)
	if err != nil {
		return apperr.Wrap(apperr.ErrStorageError, "could not check donation record", err)
	}
	if seen {
		// Re-delivered event; already recorded, ack without a second append.
		s.logger.Info(ctx, "duplicate checkout event", "session_id", session.ID)
		return nil
	}

	rec := &model.DonationRecord{
		ID:            session.ID,
		DonorEmail:    session.CustomerEmail,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
		Metadata:      session.Metadata,
		PaymentStatus: session.PaymentStatus,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.store.AppendDonation(ctx, rec); err != nil {
		// Failing the ack on purpose: the provider's retry is the recovery
		// path for a lost append.
		s.logger.Error(ctx, "persist donation", "session_id", session.ID, "error", err)
		return apperr.Wrap(apperr.ErrStorageError, "could not record donation", err)
	}

	s.logger.Info(ctx, "recorded donation", "session_id", session.ID, "amount_total", rec.AmountTotal, "currency", rec.Currency)
	return nil
}

func (s *donationServiceImpl) ListDonations(ctx context.Context) ([]*model.DonationRecord, error) {
	recs, err := s.store.ListDonations(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorageError, "could not list donations", err)
	}
	return recs, nil
}
