// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"

	"github.com/heritage-goods/storefront-backend/internal/cart"
	"github.com/heritage-goods/storefront-backend/internal/config"
)

// CheckoutService hands a cart over to the hosted checkout page. Payment
// collection happens entirely on the hosted page; this service only turns the
// confirmed line items into a checkout session and returns the redirect URL.
type CheckoutService struct {
	config config.PaymentConfig
}

type CheckoutHandoff struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

func NewCheckoutService(cfg config.PaymentConfig) *CheckoutService {
	// Initialize Stripe
	stripe.Key = cfg.StripeSecretKey

	return &CheckoutService{config: cfg}
}

var ErrEmptyCart = errors.New("checkout: cart has no confirmed line items")

func (s *CheckoutService) CreateHandoff(items []cart.LineItem) (*CheckoutHandoff, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		currency := strings.ToLower(it.Price.Currency)
		if currency == "" {
			currency = "usd"
		}

		name := it.Title
		if len(it.SelectedOptions) > 0 {
			values := make([]string, 0, len(it.SelectedOptions))
			for _, so := range it.SelectedOptions {
				values = append(values, so.Value)
			}
			name = fmt.Sprintf("%s (%s)", it.Title, strings.Join(values, " / "))
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(it.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(int64(it.Price.Amount * 100)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutHandoff{
		SessionID:   sess.ID,
		RedirectURL: sess.URL,
	}, nil
}
