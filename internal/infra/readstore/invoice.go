package readstore

import (
	"context"

	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/pkg/pgconv"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(db db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: db}
}

func (r *InvoiceReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.InvoiceView, error) {
	query := `
		SELECT id, reservation_id, guest_id, guest_name, room_name, total_cents, payment_status, issued_at
		FROM invoices
		WHERE reservation_id = $1
	`

	var (
		view     queries.InvoiceView
		issuedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, reservationID).Scan(
		&view.ID, &view.ReservationID, &view.GuestID,
		&view.GuestName, &view.RoomName,
		&view.TotalCents, &view.PaymentStatus, &issuedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice by reservation ID", err)
	}

	view.IssuedAt = pgconv.TimeFromPgtype(issuedAt)
	return &view, nil
}

func (r *InvoiceReadStore) FindAll(ctx context.Context) ([]*queries.InvoiceView, error) {
	query := `
		SELECT id, reservation_id, guest_id, guest_name, room_name, total_cents, payment_status, issued_at
		FROM invoices
		ORDER BY issued_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()

	var views []*queries.InvoiceView
	for rows.Next() {
		var (
			view     queries.InvoiceView
			issuedAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&view.ID, &view.ReservationID, &view.GuestID,
			&view.GuestName, &view.RoomName,
			&view.TotalCents, &view.PaymentStatus, &issuedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice row", err)
		}
		view.IssuedAt = pgconv.TimeFromPgtype(issuedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice rows", err)
	}
	return views, nil
}
