package writerepo

import (
	"context"

	"oceanview-backend/internal/domain/reservation"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservations (id, guest_id, room_id, check_in, check_out, total_nights, total_cents, status, payment_status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
	`

	_, err := r.db.Exec(ctx, query,
		res.ID(),
		res.GuestID(),
		res.RoomID(),
		pgconv.DateToPgtype(res.Stay().CheckIn()),
		pgconv.DateToPgtype(res.Stay().CheckOut()),
		int32(res.TotalNights()),
		res.TotalCost().Cents(),
		res.Status().String(),
		res.PaymentStatus().String(),
		noteToPgtype(res.Notes()),
	)
	if err != nil {
		return infra.WrapPgErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `
		SELECT id, guest_id, room_id, check_in, check_out, total_nights, total_cents, status, payment_status, notes, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var (
		row struct {
			id, guestID, roomID   uuid.UUID
			checkIn, checkOut     pgtype.Date
			totalNights           int32
			totalCents            int64
			status, paymentStatus string
			notes                 pgtype.Text
			createdAt, updatedAt  pgtype.Timestamptz
		}
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.id, &row.guestID, &row.roomID,
		&row.checkIn, &row.checkOut,
		&row.totalNights, &row.totalCents,
		&row.status, &row.paymentStatus, &row.notes,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	stay, err := reservation.NewStayRange(pgconv.DateFromPgtype(row.checkIn), pgconv.DateFromPgtype(row.checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid stay range", err)
	}

	return reservation.ReconstructReservation(
		row.id, row.guestID, row.roomID,
		stay,
		int(row.totalNights),
		reservation.NewMoney(row.totalCents),
		reservation.Status(row.status),
		reservation.PaymentStatus(row.paymentStatus),
		reservation.NewNote(row.notes.String),
		pgconv.TimeFromPgtype(row.createdAt),
		pgconv.TimeFromPgtype(row.updatedAt),
	), nil
}

func (r *ReservationRepository) FindActiveStaysByRoom(ctx context.Context, roomID uuid.UUID) ([]reservation.StayRange, error) {
	return findActiveStaysByRoom(ctx, r.db, roomID)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status reservation.PaymentStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET payment_status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes only the reservation row. Invoices reference
// reservations by value, not by constraint, so a generated invoice
// survives the delete.
func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func findActiveStaysByRoom(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) ([]reservation.StayRange, error) {
	query := `
		SELECT check_in, check_out
		FROM reservations
		WHERE room_id = $1 AND status <> 'rejected'
	`

	rows, err := dbtx.Query(ctx, query, roomID)
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

func noteToPgtype(n reservation.Note) pgtype.Text {
	if n.IsEmpty() {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(n.String())
}
