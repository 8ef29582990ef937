// internal/services/translation_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heritage-goods/storefront-backend/internal/config"
)

func TestHashSource(t *testing.T) {
	a := HashSource("<p>Hand-stitched leather collar</p>")
	b := HashSource("<p>Hand-stitched leather collar</p>")
	c := HashSource("<p>Hand-stitched leather collar.</p>")

	assert.Equal(t, a, b, "same source must hash identically")
	assert.NotEqual(t, a, c, "an edited description must invalidate the cache key")
	assert.NotEmpty(t, a)
}

func TestNormalizeLang(t *testing.T) {
	cases := map[string]string{
		"ru":    "ru",
		"ru-RU": "ru",
		"RU_ru": "ru",
		"en-US": "en",
		" en ":  "en",
		"":      "",
	}
	for input, want := range cases {
		assert.Equal(t, want, normalizeLang(input), "input %q", input)
	}
}

func TestTranslatePassthrough(t *testing.T) {
	svc := NewTranslationService(nil, config.TranslationConfig{})

	// English targets and empty input never touch the cache or the API.
	for _, tc := range []struct{ text, lang string }{
		{"<p>desc</p>", "en"},
		{"<p>desc</p>", "en-US"},
		{"<p>desc</p>", ""},
		{"", "ru"},
	} {
		out, cached, err := svc.Translate(context.Background(), tc.text, tc.lang)
		require.NoError(t, err)
		assert.Equal(t, tc.text, out)
		assert.False(t, cached)
	}
}

func TestCallTranslationAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[0].Content, "Russian")
		assert.Contains(t, req.Messages[0].Content, "Keep all HTML tags")
		assert.Equal(t, "<p>Genuine leather</p>", req.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"<p>Натуральная кожа</p>"}}]}`))
	}))
	defer srv.Close()

	svc := NewTranslationService(nil, config.TranslationConfig{
		APIURL: srv.URL,
		APIKey: "test-key",
		Model:  "test-model",
	})

	out, err := svc.callTranslationAPI(context.Background(), "<p>Genuine leather</p>", "ru")
	require.NoError(t, err)
	assert.Equal(t, "<p>Натуральная кожа</p>", out)
}

func TestCallTranslationAPIFailures(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		svc := NewTranslationService(nil, config.TranslationConfig{APIURL: "http://localhost"})
		_, err := svc.callTranslationAPI(context.Background(), "text", "ru")
		assert.Error(t, err)
	})

	t.Run("upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		svc := NewTranslationService(nil, config.TranslationConfig{APIURL: srv.URL, APIKey: "k", Model: "m"})
		_, err := svc.callTranslationAPI(context.Background(), "text", "ru")
		assert.ErrorContains(t, err, "429")
	})

	t.Run("empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		svc := NewTranslationService(nil, config.TranslationConfig{APIURL: srv.URL, APIKey: "k", Model: "m"})
		_, err := svc.callTranslationAPI(context.Background(), "text", "ru")
		assert.ErrorContains(t, err, "empty translation response")
	})
}
