package writerepo

import (
	"context"

	"oceanview-backend/internal/domain/invoice"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/infra/db"
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(db db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Upsert enforces one invoice per reservation at the schema level: a
// second generation for the same reservation overwrites the snapshot in
// place, keeping the original invoice id.
func (r *InvoiceRepository) Upsert(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (id, reservation_id, guest_id, guest_name, room_name, total_cents, payment_status, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (reservation_id) DO UPDATE SET
			guest_id = EXCLUDED.guest_id,
			guest_name = EXCLUDED.guest_name,
			room_name = EXCLUDED.room_name,
			total_cents = EXCLUDED.total_cents,
			payment_status = EXCLUDED.payment_status,
			issued_at = EXCLUDED.issued_at
	`

	_, err := r.db.Exec(ctx, query,
		inv.ID(),
		inv.ReservationID(),
		inv.GuestID(),
		inv.GuestName(),
		inv.RoomName(),
		inv.TotalPrice().Cents(),
		inv.PaymentStatus().String(),
		inv.IssuedAt(),
	)
	if err != nil {
		return infra.WrapPgErr("failed to upsert invoice", err)
	}
	return nil
}
