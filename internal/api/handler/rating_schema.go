package handler

import (
	"github.com/localmark/store-directory/internal/core/domain"
)

type submitRatingRequest struct {
	StoreID int64  `json:"store_id" validate:"required"`
	Rating  int    `json:"rating"   validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// updateRatingRequest: zero rating means "unchanged"; a nil comment leaves
// the comment untouched, an empty string clears it.
type updateRatingRequest struct {
	Rating  int     `json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

type ratingResponse struct {
	Rating  *domain.Rating `json:"rating"`
	Message string         `json:"message,omitempty"`
}

// ratingWithNames flattens the rating fields and appends the joined names.
type ratingWithNames struct {
	*domain.Rating
	Username  string `json:"username,omitempty"`
	StoreName string `json:"store_name,omitempty"`
}

type ratingDetailResponse struct {
	Rating  ratingWithNames `json:"rating"`
	Message string          `json:"message,omitempty"`
}

type storeRatingItem struct {
	*domain.Rating
	Username string `json:"username,omitempty"`
}

type ratingCountResponse struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type storeRatingStatsResponse struct {
	AverageRating      float64               `json:"average_rating"`
	TotalRatings       int                   `json:"total_ratings"`
	RatingDistribution []ratingCountResponse `json:"rating_distribution"`
}

type storeRatingsResponse struct {
	Ratings    []storeRatingItem        `json:"ratings"`
	Statistics storeRatingStatsResponse `json:"statistics"`
}

type userRatingItem struct {
	*domain.Rating
	StoreName     string `json:"store_name,omitempty"`
	StoreLocation string `json:"store_location,omitempty"`
}

type userRatingsResponse struct {
	Ratings []userRatingItem `json:"ratings"`
}
