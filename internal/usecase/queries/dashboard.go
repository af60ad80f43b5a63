package queries

import (
	"context"
	"time"
)

// DashboardStats aggregates counters and invoice revenue for the staff
// dashboard. Revenue sums invoice snapshots, not live reservation rows.
type DashboardStats struct {
	TotalRooms          int64          `json:"total_rooms"`
	TotalGuests         int64          `json:"total_guests"`
	TotalReservations   int64          `json:"total_reservations"`
	PendingReservations int64          `json:"pending_reservations"`
	TotalCapacity       int64          `json:"total_capacity"`
	TotalRevenueCents   int64          `json:"total_revenue_cents"`
	RevenueByDay        []RevenuePoint `json:"revenue_by_day"`
}

type RevenuePoint struct {
	Day          time.Time `json:"day"`
	RevenueCents int64     `json:"revenue_cents"`
}

type DashboardQueries interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

type DashboardReadStore interface {
	CollectStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
}

func NewDashboardQueries(readStore DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore}
}

func (q *dashboardQueriesImpl) GetStats(ctx context.Context) (*DashboardStats, error) {
	return q.readStore.CollectStats(ctx)
}
