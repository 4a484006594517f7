package handler

import (
	"github.com/localmark/store-directory/internal/core/domain"
)

type createStoreRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Phone       string `json:"phone"       validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Website     string `json:"website"`
	OwnerID     int64  `json:"owner_id"`
}

// updateStoreRequest uses pointers so absent fields are distinguishable
// from explicit zero values.
type updateStoreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
	IsActive    *bool   `json:"is_active"`
}

type storesResponse struct {
	Stores []*domain.Store `json:"stores"`
}

type storeResponse struct {
	Store   *domain.Store `json:"store"`
	Message string        `json:"message,omitempty"`
}

// storeWithRatings flattens the store fields and appends the rating view.
type storeWithRatings struct {
	*domain.Store
	Ratings       []*domain.Rating `json:"ratings"`
	AverageRating float64          `json:"average_rating"`
	TotalRatings  int              `json:"total_ratings"`
}

type storeDetailResponse struct {
	Store storeWithRatings `json:"store"`
}

type ownerStoreCountResponse struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	StoreCount int    `json:"store_count"`
}

type storeStatsResponse struct {
	TotalStores    int                       `json:"total_stores"`
	ActiveStores   int                       `json:"active_stores"`
	InactiveStores int                       `json:"inactive_stores"`
	RecentStores   int                       `json:"recent_stores"`
	AverageRating  float64                   `json:"average_rating"`
	TopStoreOwners []ownerStoreCountResponse `json:"top_store_owners"`
}
