package handler

import (
	"github.com/localmark/store-directory/internal/core/domain"
	"github.com/localmark/store-directory/internal/core/ports"
)

func toCreateStoreInput(req createStoreRequest) ports.CreateStoreInput {
	return ports.CreateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		OwnerID:     req.OwnerID,
	}
}

func toUpdateStoreInput(req updateStoreRequest) ports.UpdateStoreInput {
	return ports.UpdateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		IsActive:    req.IsActive,
	}
}

func toStoreDetailResponse(d *ports.StoreDetail) storeDetailResponse {
	ratings := d.Ratings
	if ratings == nil {
		ratings = []*domain.Rating{}
	}
	return storeDetailResponse{
		Store: storeWithRatings{
			Store:         d.Store,
			Ratings:       ratings,
			AverageRating: d.AverageRating,
			TotalRatings:  d.TotalRatings,
		},
	}
}

func toStoreStatsResponse(s *ports.StoreStats) storeStatsResponse {
	owners := make([]ownerStoreCountResponse, len(s.TopStoreOwners))
	for i, o := range s.TopStoreOwners {
		owners[i] = ownerStoreCountResponse{
			Username:   o.Username,
			Email:      o.Email,
			StoreCount: o.StoreCount,
		}
	}
	return storeStatsResponse{
		TotalStores:    s.TotalStores,
		ActiveStores:   s.ActiveStores,
		InactiveStores: s.InactiveStores,
		RecentStores:   s.RecentStores,
		AverageRating:  s.AverageRating,
		TopStoreOwners: owners,
	}
}
