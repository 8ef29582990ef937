// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heritage-goods/storefront-backend/internal/utils"
)

func TestRoundRating(t *testing.T) {
	cases := []struct {
		input, want float64
	}{
		{0, 0},
		{5, 5},
		{4.25, 4.3},
		{4.24, 4.2},
		{4.6666666666, 4.7},
		{3.3333333333, 3.3},
		{2.9999999999, 3},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, RoundRating(tc.input), 1e-9, "input %v", tc.input)
	}
}

func TestSubmitReviewRequestValidation(t *testing.T) {
	valid := SubmitReviewRequest{
		AuthorName: "Anna K",
		Rating:     5,
		Comment:    "Beautiful craftsmanship, the leather softened nicely.",
		Photos:     []string{"https://cdn.example.com/r1.jpg"},
	}
	assert.NoError(t, utils.ValidateStruct(&valid))

	t.Run("rating out of range", func(t *testing.T) {
		req := valid
		req.Rating = 6
		assert.Error(t, utils.ValidateStruct(&req))

		req.Rating = 0
		assert.Error(t, utils.ValidateStruct(&req))
	})

	t.Run("comment too short", func(t *testing.T) {
		req := valid
		req.Comment = "ok"
		assert.Error(t, utils.ValidateStruct(&req))
	})

	t.Run("author name rejected", func(t *testing.T) {
		req := valid
		req.AuthorName = "x"
		assert.Error(t, utils.ValidateStruct(&req))
	})

	t.Run("too many photos", func(t *testing.T) {
		req := valid
		req.Photos = make([]string, 6)
		for i := range req.Photos {
			req.Photos[i] = "https://cdn.example.com/r.jpg"
		}
		assert.Error(t, utils.ValidateStruct(&req))
	})

	t.Run("photo must be a url", func(t *testing.T) {
		req := valid
		req.Photos = []string{"not-a-url"}
		assert.Error(t, utils.ValidateStruct(&req))
	})

	t.Run("photos optional", func(t *testing.T) {
		req := valid
		req.Photos = nil
		assert.NoError(t, utils.ValidateStruct(&req))
	})
}
