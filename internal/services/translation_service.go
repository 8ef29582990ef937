// internal/services/translation_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/heritage-goods/storefront-backend/internal/config"
	"github.com/heritage-goods/storefront-backend/internal/models"
)

// TranslationService produces localized product descriptions. Translations go
// through an AI endpoint once and are served from the cache afterwards, keyed
// by (source hash, target language).
type TranslationService struct {
	db         *gorm.DB
	config     config.TranslationConfig
	httpClient *http.Client
}

func NewTranslationService(db *gorm.DB, cfg config.TranslationConfig) *TranslationService {
	return &TranslationService{
		db:     db,
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HashSource fingerprints the source HTML for the cache key. FNV-32a keeps the
// key short; a product description edit changes the hash and naturally
// invalidates the cached translation.
func HashSource(text string) string {
	h := fnv.New32a()
	h.Write([]byte(text))
	return fmt.Sprintf("%x", h.Sum32())
}

// Translate returns the description in the target language. English targets
// and empty input pass through unchanged. The boolean reports a cache hit.
func (s *TranslationService) Translate(ctx context.Context, text, targetLang string) (string, bool, error) {
	targetLang = normalizeLang(targetLang)
	if text == "" || targetLang == "" || targetLang == "en" {
		return text, false, nil
	}

	sourceHash := HashSource(text)

	var cached models.CachedTranslation
	err := s.db.Where("source_hash = ? AND target_lang = ?", sourceHash, targetLang).
		First(&cached).Error
	if err == nil {
		return cached.TranslatedText, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, fmt.Errorf("translation cache lookup: %w", err)
	}

	translated, err := s.callTranslationAPI(ctx, text, targetLang)
	if err != nil {
		return "", false, err
	}

	entry := models.CachedTranslation{
		SourceHash:     sourceHash,
		SourceLang:     "en",
		TargetLang:     targetLang,
		TranslatedText: translated,
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source_hash"}, {Name: "target_lang"}},
		DoUpdates: clause.AssignmentColumns([]string{"translated_text", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		// A failed cache write only costs a repeat API call next time.
		logrus.WithError(err).Warn("Failed to cache translation")
	}

	return translated, false, nil
}

// normalizeLang maps "ru-RU" style tags to the bare language code.
func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *TranslationService) callTranslationAPI(ctx context.Context, text, targetLang string) (string, error) {
	if s.config.APIKey == "" {
		return "", errors.New("translation API key not configured")
	}

	langName := targetLang
	if targetLang == "ru" {
		langName = "Russian"
	}

	prompt := fmt.Sprintf(`You are a professional translator. Translate the product description below from English to %s.
Rules:
- Keep all HTML tags and formatting exactly as they are
- Translate naturally, as a native speaker would write
- Do not add, remove or reorder content
- Do not translate brand or product model names
- Return only the translated text`, langName)

	body, err := json.Marshal(chatRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build translation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation API returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", errors.New("empty translation response")
	}

	translated := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if translated == "" {
		return "", errors.New("empty translation response")
	}
	return translated, nil
}
