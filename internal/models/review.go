// internal/models/review.go
package models

import (
	"github.com/lib/pq"
)

type Review struct {
	BaseModel
	ProductHandle string         `json:"product_handle" gorm:"size:255;not null;index"`
	AuthorName    string         `json:"author_name" gorm:"size:100;not null"`
	Rating        int            `json:"rating" gorm:"not null"`
	Comment       string         `json:"comment" gorm:"type:text;not null"`
	Photos        pq.StringArray `json:"photos,omitempty" gorm:"type:text[]"`
	IsApproved    bool           `json:"is_approved" gorm:"default:false;index"`
}

// ReviewStats is derived from the approved reviews of a product.
type ReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalCount    int64   `json:"total_count"`
}
