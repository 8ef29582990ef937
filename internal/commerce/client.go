// internal/commerce/client.go
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heritage-goods/storefront-backend/internal/catalog"
	"github.com/heritage-goods/storefront-backend/internal/config"
)

// LineItem is a cart line as the commerce platform reports it.
type LineItem struct {
	ID              string                   `json:"id"`
	VariantID       string                   `json:"variant_id"`
	Quantity        int                      `json:"quantity"`
	Title           string                   `json:"title"`
	Price           catalog.Money            `json:"price"`
	SelectedOptions []catalog.SelectedOption `json:"selected_options"`
	ImageURL        string                   `json:"image_url,omitempty"`
}

// LineInput is one desired cart line sent to the platform.
type LineInput struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// Client talks to the headless commerce platform's storefront API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg config.CommerceConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.StorefrontToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
	}
}

type productListResponse struct {
	Products []catalog.Product `json:"products"`
}

type productResponse struct {
	Product catalog.Product `json:"product"`
}

type cartResponse struct {
	Cart struct {
		ID    string     `json:"id"`
		Lines []LineItem `json:"lines"`
	} `json:"cart"`
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) ListProducts(ctx context.Context, limit int) ([]catalog.Product, error) {
	var resp productListResponse
	path := fmt.Sprintf("/storefront/products?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetProductByHandle(ctx context.Context, handle string) (*catalog.Product, error) {
	var resp productResponse
	path := "/storefront/products/" + handle
	if err := c.do(ctx, http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

// CreateOrGetCart returns an existing remote cart when existingID still
// resolves, otherwise creates a fresh one. A stale persisted id (expired or
// completed cart) falls through to creation rather than failing the session.
func (c *Client) CreateOrGetCart(ctx context.Context, existingID string) (string, []LineItem, error) {
	if existingID != "" {
		var resp cartResponse
		err := c.do(ctx, http.MethodGet, "/storefront/carts/"+existingID, nil, "", &resp)
		if err == nil {
			return resp.Cart.ID, resp.Cart.Lines, nil
		}
		if KindOf(err) != FailureRejected {
			return "", nil, err
		}
	}

	var resp cartResponse
	if err := c.do(ctx, http.MethodPost, "/storefront/carts", struct{}{}, uuid.NewString(), &resp); err != nil {
		return "", nil, err
	}
	return resp.Cart.ID, resp.Cart.Lines, nil
}

// SetLineItems replaces the cart's line items with the desired list and
// returns the authoritative result. The idempotency key makes a resend after
// a timeout safe: the platform replays the stored response instead of
// applying the replacement twice.
func (c *Client) SetLineItems(ctx context.Context, cartID string, desired []LineInput, idempotencyKey string) ([]LineItem, error) {
	body := struct {
		Lines []LineInput `json:"lines"`
	}{Lines: desired}

	var resp cartResponse
	path := "/storefront/carts/" + cartID + "/lines"
	if err := c.do(ctx, http.MethodPut, path, body, idempotencyKey, &resp); err != nil {
		return nil, err
	}
	return resp.Cart.Lines, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, idempotencyKey string, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return InvariantError(fmt.Sprintf("encode request body: %v", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return InvariantError(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Storefront-Token", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return NetworkError(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Error.Code == "" {
			return RejectionError(fmt.Sprintf("http_%d", httpResp.StatusCode), httpResp.Status)
		}
		return RejectionError(apiErr.Error.Code, apiErr.Error.Message)
	}

	if out != nil {
		if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
			return NetworkError(fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}
