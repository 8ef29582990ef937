// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/heritage-goods/storefront-backend/internal/cart"
	"github.com/heritage-goods/storefront-backend/internal/catalog"
	"github.com/heritage-goods/storefront-backend/internal/i18n"
	"github.com/heritage-goods/storefront-backend/internal/services"
	"github.com/heritage-goods/storefront-backend/internal/utils"
)

type CartHandler struct {
	carts           *cart.Manager
	checkoutService *services.CheckoutService
}

func NewCartHandler(carts *cart.Manager, checkoutService *services.CheckoutService) *CartHandler {
	return &CartHandler{
		carts:           carts,
		checkoutService: checkoutService,
	}
}

func (h *CartHandler) store(c *gin.Context) (*cart.Store, bool) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.InternalErrorResponse(c, "missing session")
		return nil, false
	}
	return h.carts.Get(c.Request.Context(), sessionID), true
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{"cart": store.View()})
}

type addItemRequest struct {
	VariantID       string                   `json:"variant_id" validate:"required"`
	Quantity        int                      `json:"quantity" validate:"required,min=1"`
	Title           string                   `json:"title" validate:"required"`
	Price           catalog.Money            `json:"price"`
	SelectedOptions []catalog.SelectedOption `json:"selected_options,omitempty"`
	ImageURL        string                   `json:"image_url,omitempty"`
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	store, ok := h.store(c)
	if !ok {
		return
	}

	err := store.AddItem(c.Request.Context(), cart.AddItemInput{
		VariantID:       req.VariantID,
		Quantity:        req.Quantity,
		Price:           req.Price,
		Title:           req.Title,
		SelectedOptions: req.SelectedOptions,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"cart": store.View()})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"cart": store.View()})
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		respondCartError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"cart": store.View()})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.Reset(); err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
		"cart":    store.View(),
	})
}

// POST /checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	store, ok := h.store(c)
	if !ok {
		return
	}

	handoff, err := h.checkoutService.CreateHandoff(store.ConfirmedItems())
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartEmpty), nil)
			return
		}
		utils.BadGatewayResponse(c, i18n.T(lang, i18n.KeyCartCheckoutFailed))
		return
	}

	// The hosted checkout owns the order from here; the local cart is done.
	if err := store.Reset(); err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"checkout": handoff})
}

func respondCartError(c *gin.Context, err error) {
	if errors.Is(err, cart.ErrLineNotFound) {
		utils.NotFoundResponse(c, "cart.line")
		return
	}
	respondCommerceError(c, err)
}
