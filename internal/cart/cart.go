// internal/cart/cart.go
package cart

import (
	"context"
	"errors"

	"github.com/heritage-goods/storefront-backend/internal/catalog"
	"github.com/heritage-goods/storefront-backend/internal/commerce"
)

// Gateway is the slice of the commerce platform the cart store depends on.
// Both calls are idempotent with respect to retries; neither is assumed to be
// reachable synchronously.
type Gateway interface {
	CreateOrGetCart(ctx context.Context, existingID string) (string, []commerce.LineItem, error)
	SetLineItems(ctx context.Context, cartID string, desired []commerce.LineInput, idempotencyKey string) ([]commerce.LineItem, error)
}

// SessionStore is the durable mapping from a storefront session to its remote
// cart identifier. Read at store creation, written on first cart acquisition,
// cleared on explicit reset.
type SessionStore interface {
	Load(sessionID string) (string, error)
	Save(sessionID, remoteCartID string) error
	Clear(sessionID string) error
}

// LineItem is one cart entry. Price and selected options are snapshots taken
// at add time so the drawer renders without re-fetching the product; both are
// overwritten by the platform's authoritative values after each sync.
type LineItem struct {
	ID              string                   `json:"id"`
	VariantID       string                   `json:"variant_id"`
	Title           string                   `json:"title"`
	Quantity        int                      `json:"quantity"`
	Price           catalog.Money            `json:"price"`
	SelectedOptions []catalog.SelectedOption `json:"selected_options"`
	ImageURL        string                   `json:"image_url,omitempty"`
}

// AddItemInput carries the resolved variant reference plus the display
// snapshots captured by the product page.
type AddItemInput struct {
	VariantID       string
	Quantity        int
	Price           catalog.Money
	Title           string
	SelectedOptions []catalog.SelectedOption
	ImageURL        string
}

// Snapshot is a read-only view of the cart handed to consumers. Consumers
// never mutate the store's line items directly.
type Snapshot struct {
	RemoteCartID string        `json:"remote_cart_id,omitempty"`
	Items        []LineItem    `json:"items"`
	Total        catalog.Money `json:"total"`
	Syncing      bool          `json:"syncing"`
}

var ErrLineNotFound = errors.New("cart: line item not found")

func cloneLines(lines []LineItem) []LineItem {
	out := make([]LineItem, len(lines))
	copy(out, lines)
	for i := range out {
		opts := make([]catalog.SelectedOption, len(lines[i].SelectedOptions))
		copy(opts, lines[i].SelectedOptions)
		out[i].SelectedOptions = opts
	}
	return out
}

func fromRemote(lines []commerce.LineItem) []LineItem {
	out := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineItem{
			ID:              l.ID,
			VariantID:       l.VariantID,
			Title:           l.Title,
			Quantity:        l.Quantity,
			Price:           l.Price,
			SelectedOptions: l.SelectedOptions,
			ImageURL:        l.ImageURL,
		})
	}
	return out
}

func desiredLines(items []LineItem) []commerce.LineInput {
	out := make([]commerce.LineInput, 0, len(items))
	for _, it := range items {
		out = append(out, commerce.LineInput{VariantID: it.VariantID, Quantity: it.Quantity})
	}
	return out
}
