// internal/services/review_service.go
package services

import (
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/heritage-goods/storefront-backend/internal/models"
	"github.com/heritage-goods/storefront-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type SubmitReviewRequest struct {
	AuthorName string   `json:"author_name" validate:"required,author_name"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Comment    string   `json:"comment" validate:"required,min=3"`
	Photos     []string `json:"photos,omitempty" validate:"omitempty,max=5,dive,url"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// SubmitReview stores a review in the moderation queue. Every review enters
// unapproved; the moderation decision happens outside this service.
func (s *ReviewService) SubmitReview(productHandle string, req *SubmitReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	review := &models.Review{
		ProductHandle: productHandle,
		AuthorName:    req.AuthorName,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Photos:        req.Photos,
		IsApproved:    false,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// GetProductReviews lists approved reviews for a product, newest first.
func (s *ReviewService) GetProductReviews(productHandle string, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := s.db.Model(&models.Review{}).
		Where("product_handle = ? AND is_approved = ?", productHandle, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "rating"})
	query = utils.ApplyPagination(query, params)

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}

// GetReviewStats aggregates the approved reviews of a product.
func (s *ReviewService) GetReviewStats(productHandle string) (*models.ReviewStats, error) {
	var stats struct {
		Average float64
		Count   int64
	}

	err := s.db.Model(&models.Review{}).
		Where("product_handle = ? AND is_approved = ?", productHandle, true).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	return &models.ReviewStats{
		AverageRating: RoundRating(stats.Average),
		TotalCount:    stats.Count,
	}, nil
}

// RoundRating rounds an average rating to one decimal, the precision the
// storefront displays next to the stars.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
