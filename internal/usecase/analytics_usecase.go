package usecase

import (
	"context"
	"time"

	"agrox/internal/domain/entity"
)

// Activity is one line of the provider activity feed.
type Activity struct {
	RequestID   string               `json:"requestId"`
	Status      entity.RequestStatus `json:"status"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	At          time.Time            `json:"at"`
	TimeAgo     string               `json:"timeAgo"`
}

// ProviderAnalytics summarizes the requests a provider received.
type ProviderAnalytics struct {
	TotalListings   int         `json:"totalListings"`
	TotalRequests   int         `json:"totalRequests"`
	Pending         int         `json:"pending"`
	Approved        int         `json:"approved"`
	Declined        int         `json:"declined"`
	PendingPercent  float64     `json:"pendingPercent"`
	ApprovedPercent float64     `json:"approvedPercent"`
	DeclinedPercent float64     `json:"declinedPercent"`
	ActiveChats     int         `json:"activeChats"`
	Recent          []*Activity `json:"recent"`
}

// AnalyticsUsecase computes dashboard analytics.
type AnalyticsUsecase interface {
	Provider(ctx context.Context, sess *entity.Session) (*ProviderAnalytics, error)
}
