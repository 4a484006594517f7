package handler

import (
	"github.com/localmark/store-directory/internal/core/ports"
)

func toRatingDetail(d *ports.RatingDetail) ratingWithNames {
	return ratingWithNames{
		Rating:    d.Rating,
		Username:  d.Username,
		StoreName: d.StoreName,
	}
}

func toStoreRatingsResponse(ratings []ports.StoreRating, stats *ports.StoreRatingStats) storeRatingsResponse {
	items := make([]storeRatingItem, len(ratings))
	for i, r := range ratings {
		items[i] = storeRatingItem{Rating: r.Rating, Username: r.Username}
	}

	dist := make([]ratingCountResponse, len(stats.Distribution))
	for i, rc := range stats.Distribution {
		dist[i] = ratingCountResponse{Rating: rc.Rating, Count: rc.Count}
	}

	return storeRatingsResponse{
		Ratings: items,
		Statistics: storeRatingStatsResponse{
			AverageRating:      stats.AverageRating,
			TotalRatings:       stats.TotalRatings,
			RatingDistribution: dist,
		},
	}
}

func toUserRatingsResponse(ratings []ports.UserRating) userRatingsResponse {
	items := make([]userRatingItem, len(ratings))
	for i, r := range ratings {
		items[i] = userRatingItem{
			Rating:        r.Rating,
			StoreName:     r.StoreName,
			StoreLocation: r.StoreLocation,
		}
	}
	return userRatingsResponse{Ratings: items}
}
