package readstore

import (
	"context"

	"oceanview-backend/internal/domain/reservation"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/pkg/pgconv"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationListColumns = `
	r.id, r.guest_id, r.room_id, COALESCE(rm.name, ''),
	r.check_in, r.check_out, r.total_cents, r.status, r.created_at
`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

// FindByID joins guest and room display data for the detail view. Both
// joins are LEFT so a dangling reference still returns the reservation.
func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT r.id, r.guest_id, COALESCE(u.name, ''), COALESCE(u.email, ''),
		       r.room_id, COALESCE(rm.name, ''),
		       r.check_in, r.check_out, r.total_nights, r.total_cents,
		       r.status, r.payment_status, r.notes, r.created_at, r.updated_at
		FROM reservations r
		LEFT JOIN users u ON u.id = r.guest_id
		LEFT JOIN rooms rm ON rm.id = r.room_id
		WHERE r.id = $1
	`

	var (
		view                 queries.ReservationView
		checkIn, checkOut    pgtype.Date
		notes                pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.GuestID, &view.GuestName, &view.GuestEmail,
		&view.RoomID, &view.RoomName,
		&checkIn, &checkOut, &view.TotalNights, &view.TotalCents,
		&view.Status, &view.PaymentStatus, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT ` + reservationListColumns + `
		FROM reservations r
		LEFT JOIN rooms rm ON rm.id = r.room_id
		ORDER BY r.created_at DESC
	`
	return r.listReservations(ctx, query)
}

func (r *ReservationReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT ` + reservationListColumns + `
		FROM reservations r
		LEFT JOIN rooms rm ON rm.id = r.room_id
		WHERE r.guest_id = $1
		ORDER BY r.created_at DESC
	`
	return r.listReservations(ctx, query, guestID)
}

func (r *ReservationReadStore) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT ` + reservationListColumns + `
		FROM reservations r
		LEFT JOIN rooms rm ON rm.id = r.room_id
		WHERE r.room_id = $1
		ORDER BY r.check_in
	`
	return r.listReservations(ctx, query, roomID)
}

func (r *ReservationReadStore) FindActiveStaysByRoom(ctx context.Context, roomID uuid.UUID) ([]reservation.StayRange, error) {
	query := `
		SELECT check_in, check_out
		FROM reservations
		WHERE room_id = $1 AND status <> 'rejected'
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active stays", err)
	}
	defer rows.Close()

	var stays []reservation.StayRange
	for rows.Next() {
		var checkIn, checkOut pgtype.Date
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stay range", err)
		}
		stay, err := reservation.NewStayRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has invalid stay range", err)
		}
		stays = append(stays, stay)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stay ranges", err)
	}
	return stays, nil
}

func (r *ReservationReadStore) listReservations(ctx context.Context, query string, args ...any) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			item              queries.ReservationListItem
			checkIn, checkOut pgtype.Date
			createdAt         pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.GuestID, &item.RoomID, &item.RoomName,
			&checkIn, &checkOut, &item.TotalCents, &item.Status, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return items, nil
}
