// internal/cart/session.go
package cart

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/heritage-goods/storefront-backend/internal/models"
)

// GormSessionStore persists session → remote cart id mappings in Postgres.
type GormSessionStore struct {
	db *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

func (s *GormSessionStore) Load(sessionID string) (string, error) {
	var session models.CartSession
	err := s.db.Where("session_id = ?", sessionID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return session.RemoteCartID, nil
}

func (s *GormSessionStore) Save(sessionID, remoteCartID string) error {
	session := models.CartSession{
		SessionID:    sessionID,
		RemoteCartID: remoteCartID,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"remote_cart_id", "updated_at"}),
	}).Create(&session).Error
}

func (s *GormSessionStore) Clear(sessionID string) error {
	return s.db.Where("session_id = ?", sessionID).Delete(&models.CartSession{}).Error
}

// MemorySessionStore keeps the mapping in memory. Used by tests and by
// deployments that accept losing carts on restart.
type MemorySessionStore struct {
	mu    sync.Mutex
	carts map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{carts: make(map[string]string)}
}

func (s *MemorySessionStore) Load(sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sessionID], nil
}

func (s *MemorySessionStore) Save(sessionID, remoteCartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = remoteCartID
	return nil
}

func (s *MemorySessionStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
