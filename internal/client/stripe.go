package client

import (
	"context"
	"encoding/json"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/config"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

// CheckoutParams describes one hosted checkout session.
type CheckoutParams struct {
	AmountMinor   int64
	Currency      string // lower-case ISO-4217
	Description   string
	Recurring     bool // monthly interval when true
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// WebhookEvent is a verified provider event, narrowed to what the reconciler
// needs. Object is the raw JSON of the event's data object.
type WebhookEvent struct {
	ID     string
	Type   string
	Object json.RawMessage
}

type PaymentClient interface {
	// Configured reports whether checkout-session creation can work.
	Configured() bool
	// WebhookConfigured reports whether inbound events can be verified.
	WebhookConfigured() bool
	CreateCheckoutSession(ctx context.Context, p *CheckoutParams) (redirectURL string, err error)
	VerifyWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error)
}

type stripeClientImpl struct {
	sessions      *session.Client
	webhookSecret string
}

// NewStripeClient builds the payment client from deployment config. Missing
// credentials are allowed; the resulting client reports itself unconfigured
// instead of failing at startup.
func NewStripeClient(cfg *config.Stripe) PaymentClient {
	c := &stripeClientImpl{webhookSecret: cfg.WebhookSecret}
	if cfg.SecretKey != "" {
		c.sessions = &session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: cfg.SecretKey,
		}
	}
	return c
}

func (c *stripeClientImpl) Configured() bool { return c.sessions != nil }

func (c *stripeClientImpl) WebhookConfigured() bool { return c.webhookSecret != "" }

func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, p *CheckoutParams) (string, error) {
	if c.sessions == nil {
		return "", apperr.New(apperr.ErrProviderNotConfigured, "payment provider not configured")
	}

	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency: stripe.String(p.Currency),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(p.Description),
		},
		UnitAmount: stripe.Int64(p.AmountMinor),
	}
	mode := stripe.CheckoutSessionModePayment
	if p.Recurring {
		mode = stripe.CheckoutSessionModeSubscription
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String("month"),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(mode)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: priceData,
				Quantity:  stripe.Int64(1),
			},
		},
		Metadata:   p.Metadata,
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.Context = ctx
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}

	s, err := c.sessions.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			return "", apperr.Wrap(apperr.ErrProviderError, stripeErr.Msg, err)
		}
		return "", apperr.Wrap(apperr.ErrProviderError, "payment provider request failed", err)
	}
	return s.URL, nil
}

func (c *stripeClientImpl) VerifyWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrSignatureInvalid, "webhook signature verification failed", err)
	}
	return &WebhookEvent{
		ID:     event.ID,
		Type:   string(event.Type),
		Object: event.Data.Raw,
	}, nil
}
