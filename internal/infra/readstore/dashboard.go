package readstore

import (
	"context"

	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/pkg/pgconv"
	"oceanview-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(db db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

// CollectStats runs the counter query and the revenue timeline as two
// independent reads; the dashboard tolerates the slight skew between them.
func (r *DashboardReadStore) CollectStats(ctx context.Context) (*queries.DashboardStats, error) {
	counters := `
		SELECT
			(SELECT count(*) FROM rooms),
			(SELECT count(*) FROM users WHERE role = 'guest'),
			(SELECT count(*) FROM reservations),
			(SELECT count(*) FROM reservations WHERE status = 'pending'),
			(SELECT COALESCE(sum(capacity), 0) FROM rooms),
			(SELECT COALESCE(sum(total_cents), 0) FROM invoices)
	`

	var stats queries.DashboardStats
	err := r.db.QueryRow(ctx, counters).Scan(
		&stats.TotalRooms,
		&stats.TotalGuests,
		&stats.TotalReservations,
		&stats.PendingReservations,
		&stats.TotalCapacity,
		&stats.TotalRevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect dashboard counters", err)
	}

	timeline := `
		SELECT date_trunc('day', issued_at)::date AS day, sum(total_cents)
		FROM invoices
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.db.Query(ctx, timeline)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect revenue timeline", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			day   pgtype.Date
			point queries.RevenuePoint
		)
		if err := rows.Scan(&day, &point.RevenueCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue point", err)
		}
		point.Day = pgconv.DateFromPgtype(day)
		stats.RevenueByDay = append(stats.RevenueByDay, point)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue points", err)
	}

	return &stats, nil
}
