// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Products
	KeyProductNotFound   = "product.not_found"
	KeyProductNoVariants = "product.no_variants"

	// Cart
	KeyCartSyncFailed     = "cart.sync_failed"
	KeyCartItemRejected   = "cart.item_rejected"
	KeyCartLineNotFound   = "cart.line.not_found"
	KeyCartCleared        = "cart.cleared"
	KeyCartCheckoutFailed = "cart.checkout_failed"
	KeyCartEmpty          = "cart.empty"

	// Reviews
	KeyReviewSubmitted = "review.submitted"
	KeyReviewRejected  = "review.rejected"

	// Translation
	KeyTranslationFailed = "translation.failed"
)
