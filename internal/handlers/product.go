// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/heritage-goods/storefront-backend/internal/catalog"
	"github.com/heritage-goods/storefront-backend/internal/commerce"
	"github.com/heritage-goods/storefront-backend/internal/i18n"
	"github.com/heritage-goods/storefront-backend/internal/services"
	"github.com/heritage-goods/storefront-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	products, err := h.catalogService.ListProducts(c.Request.Context(), limit)
	if err != nil {
		respondCommerceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"products": products})
}

// GET /products/:handle
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProductByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		respondCommerceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

type resolveRequest struct {
	Selection map[string]string `json:"selection"`
}

// POST /products/:handle/resolve
func (h *ProductHandler) ResolveVariant(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "selection"), err.Error())
		return
	}

	_, variant, ok, err := h.catalogService.ResolveVariant(
		c.Request.Context(), c.Param("handle"), catalog.Selection(req.Selection))
	if err != nil {
		respondCommerceError(c, err)
		return
	}
	if !ok {
		utils.UnprocessableResponse(c, "NO_VARIANT", i18n.T(lang, i18n.KeyProductNoVariants))
		return
	}

	utils.SuccessResponse(c, gin.H{"variant": variant})
}

// respondCommerceError maps gateway failure kinds onto HTTP statuses: the
// platform being unreachable is a 502, a refusal is a 422 with the platform's
// code, and anything else is a local bug.
func respondCommerceError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch commerce.KindOf(err) {
	case commerce.FailureNetwork:
		utils.BadGatewayResponse(c, "")
	case commerce.FailureRejected:
		if ce, ok := err.(*commerce.Error); ok && ce.Code == "http_404" {
			utils.NotFoundResponse(c, "product")
			return
		}
		code := "REMOTE_REJECTION"
		if ce, ok := err.(*commerce.Error); ok && ce.Code != "" {
			code = ce.Code
		}
		utils.UnprocessableResponse(c, code, i18n.T(lang, i18n.KeyCartItemRejected))
	default:
		utils.InternalErrorResponse(c, "")
	}
}
