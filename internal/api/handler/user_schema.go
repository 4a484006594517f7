package handler

import (
	"github.com/localmark/store-directory/internal/core/domain"
	"github.com/localmark/store-directory/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges a mutation with no entity payload.
type messageResponse struct {
	Message string `json:"message"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
}

type userResponse struct {
	User    *domain.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

type roleCountResponse struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type userStatsResponse struct {
	TotalUsers          int                 `json:"total_users"`
	RoleDistribution    []roleCountResponse `json:"role_distribution"`
	RecentRegistrations int                 `json:"recent_registrations"`
	TodayRegistrations  int                 `json:"today_registrations"`
}

func toUserStatsResponse(s *ports.UserStats) userStatsResponse {
	dist := make([]roleCountResponse, len(s.RoleDistribution))
	for i, rc := range s.RoleDistribution {
		dist[i] = roleCountResponse{Role: rc.Role, Count: rc.Count}
	}
	return userStatsResponse{
		TotalUsers:          s.TotalUsers,
		RoleDistribution:    dist,
		RecentRegistrations: s.RecentRegistrations,
		TodayRegistrations:  s.TodayRegistrations,
	}
}
