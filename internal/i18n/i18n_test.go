// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestInstance(t *testing.T) *I18n {
	i := &I18n{
		translations: make(map[string]map[string]string),
		defaultLang:  "en",
	}
	require.NoError(t, i.LoadTranslations("locales"))
	return i
}

func TestLocaleFilesCoverHandlerKeys(t *testing.T) {
	i := loadTestInstance(t)

	keys := []string{
		KeyValidationInvalid,
		KeyProductNotFound,
		KeyProductNoVariants,
		KeyCartSyncFailed,
		KeyCartItemRejected,
		KeyCartLineNotFound,
		KeyCartCleared,
		KeyCartCheckoutFailed,
		KeyCartEmpty,
		KeyReviewSubmitted,
		KeyTranslationFailed,
	}

	for _, lang := range []string{"en", "ru"} {
		for _, key := range keys {
			assert.NotEqual(t, key, i.T(lang, key), "missing %s translation for %s", lang, key)
		}
	}
}

func TestTranslationFallsBackToEnglish(t *testing.T) {
	i := loadTestInstance(t)

	// An unsupported language falls back to English, never to the raw key.
	assert.Equal(t, i.T("en", KeyCartCleared), i.T("de", KeyCartCleared))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	i := loadTestInstance(t)
	assert.Equal(t, "no.such.key", i.T("en", "no.such.key"))
}
