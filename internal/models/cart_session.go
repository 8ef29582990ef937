// internal/models/cart_session.go
package models

// CartSession remembers which remote cart belongs to a storefront session, so
// a returning visitor gets their cart back after a reload.
type CartSession struct {
	BaseModel
	SessionID    string `json:"session_id" gorm:"size:64;not null;uniqueIndex"`
	RemoteCartID string `json:"remote_cart_id" gorm:"size:255;not null"`
}
