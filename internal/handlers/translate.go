// internal/handlers/translate.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/heritage-goods/storefront-backend/internal/i18n"
	"github.com/heritage-goods/storefront-backend/internal/services"
	"github.com/heritage-goods/storefront-backend/internal/utils"
)

type TranslateHandler struct {
	translationService *services.TranslationService
}

func NewTranslateHandler(translationService *services.TranslationService) *TranslateHandler {
	return &TranslateHandler{translationService: translationService}
}

type translateRequest struct {
	Text       string `json:"text" validate:"required"`
	TargetLang string `json:"target_lang" validate:"required"`
}

// POST /translate
func (h *TranslateHandler) Translate(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	translated, cached, err := h.translationService.Translate(c.Request.Context(), req.Text, req.TargetLang)
	if err != nil {
		// The storefront prefers the English original over an error page.
		logrus.WithError(err).Warn("Translation failed, serving source text")
		utils.SuccessResponse(c, gin.H{
			"translated": req.Text,
			"fallback":   true,
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"translated": translated,
		"cached":     cached,
	})
}
