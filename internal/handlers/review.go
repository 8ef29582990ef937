// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/heritage-goods/storefront-backend/internal/i18n"
	"github.com/heritage-goods/storefront-backend/internal/services"
	"github.com/heritage-goods/storefront-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GET /products/:handle/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	handle := c.Param("handle")
	params := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewService.GetProductReviews(handle, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	stats, err := h.reviewService.GetReviewStats(handle)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(reviews, total, params)
	utils.SuccessResponseWithMeta(c, reviews, gin.H{
		"stats": stats,
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

// POST /products/:handle/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.SubmitReview(c.Param("handle"), &req)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyReviewRejected))
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReviewSubmitted),
		"review":  review,
	})
}
