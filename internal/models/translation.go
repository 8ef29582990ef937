// internal/models/translation.go
package models

// CachedTranslation stores one translated product description, keyed by the
// hash of the source HTML and the target language.
type CachedTranslation struct {
	BaseModel
	SourceHash     string `json:"source_hash" gorm:"size:16;not null;uniqueIndex:idx_translation_key"`
	SourceLang     string `json:"source_lang" gorm:"size:8;not null;default:'en'"`
	TargetLang     string `json:"target_lang" gorm:"size:8;not null;uniqueIndex:idx_translation_key"`
	TranslatedText string `json:"translated_text" gorm:"type:text;not null"`
}

func (CachedTranslation) TableName() string {
	return "translations_cache"
}
