package commands

import (
	"context"
	"log/slog"

	"oceanview-backend/internal/domain/invoice"
	"oceanview-backend/internal/domain/reservation"
	reqdto "oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/pkg/clock"
	"oceanview-backend/internal/pkg/errs"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomUnavailable         = errs.New("room unavailable for requested dates")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, guestID uuid.UUID) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error)
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	invoiceRepo        InvoiceRepository
	roomReader         RoomReader
	guestReader        GuestReader
	notifier           Notifier
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	roomReader RoomReader,
	guestReader GuestReader,
	notifier Notifier,
	reservationQueries queries.ReservationQueries,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		invoiceRepo:        invoiceRepo,
		roomReader:         roomReader,
		guestReader:        guestReader,
		notifier:           notifier,
		reservationQueries: reservationQueries,
		clock:              clock,
	}
}

// CreateReservation runs the availability pre-check and then persists.
// The check and the insert are not atomic: two overlapping requests can
// both pass the check before either row lands. The pre-check is kept
// separate from the insert so callers can probe availability on its own.
func (r *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	guestID uuid.UUID,
) (*queries.ReservationView, error) {
	stay, err := reservation.NewStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	roomSnap, err := r.roomReader.FindByID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	occupied, err := r.reservationRepo.FindActiveStaysByRoom(ctx, req.RoomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !reservation.IsAvailable(stay, occupied) {
		return nil, ErrRoomUnavailable
	}

	entity, err := reservation.NewReservation(
		guestID,
		req.RoomID,
		stay,
		reservation.NewMoney(roomSnap.NightlyRateCents),
		reservation.NewNote(req.GetNotes()),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.reservationRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := r.reservationQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UpdateStatus persists the new status first and then runs the side
// effects keyed on it: approved regenerates the invoice and mails an
// acceptance notice, rejected mails a rejection notice, anything else has
// none. No transaction spans the status write and the side effects; an
// invoice failure after the status committed leaves an approved
// reservation without an invoice, repaired by re-approving (the upsert is
// idempotent per reservation).
func (r *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error) {
	newStatus, err := reservation.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := r.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch newStatus {
	case reservation.StatusApproved:
		if err := r.generateInvoice(ctx, entity); err != nil {
			return nil, err
		}
		r.notifyDecision(ctx, entity, true)
	case reservation.StatusRejected:
		r.notifyDecision(ctx, entity, false)
	}

	view, err := r.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *reservationCommandsImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error) {
	newStatus, err := reservation.NewPaymentStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := r.findReservation(ctx, id); err != nil {
		return nil, err
	}

	if err := r.reservationRepo.UpdatePaymentStatus(ctx, id, newStatus); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := r.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// DeleteReservation hard-deletes the row. An invoice already generated
// for it stays behind; billing snapshots outlive their reservation.
func (r *reservationCommandsImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	if err := r.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reservationCommandsImpl) findReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	entity, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

// generateInvoice snapshots guest and room display names at transition
// time. A dangling guest or room reference degrades to a placeholder name
// instead of blocking the invoice.
func (r *reservationCommandsImpl) generateInvoice(ctx context.Context, entity *reservation.Reservation) error {
	var guestName, roomName string

	if guest, err := r.guestReader.FindByID(ctx, entity.GuestID()); err == nil {
		guestName = guest.Name
	}
	if roomSnap, err := r.roomReader.FindByID(ctx, entity.RoomID()); err == nil {
		roomName = roomSnap.Name
	}

	inv := invoice.NewInvoice(
		entity.ID(),
		entity.GuestID(),
		guestName,
		roomName,
		entity.TotalCost(),
		entity.PaymentStatus(),
		r.clock.Now(),
	)

	if err := r.invoiceRepo.Upsert(ctx, inv); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// notifyDecision is best-effort: a missing guest record or contact
// address skips the mail, and a delivery failure is logged and swallowed.
// The status change and invoice already persisted are never unwound here.
func (r *reservationCommandsImpl) notifyDecision(ctx context.Context, entity *reservation.Reservation, approved bool) {
	guest, err := r.guestReader.FindByID(ctx, entity.GuestID())
	if err != nil || guest.Email == "" {
		slog.Info("skipping reservation notification, guest unreachable",
			"reservation_id", entity.ID(), "guest_id", entity.GuestID())
		return
	}

	roomName := invoice.UnknownRoomName
	if roomSnap, err := r.roomReader.FindByID(ctx, entity.RoomID()); err == nil {
		roomName = roomSnap.Name
	}

	mail := ReservationDecisionEmail{
		GuestName:  guest.Name,
		GuestEmail: guest.Email,
		RoomName:   roomName,
		CheckIn:    entity.Stay().CheckIn(),
		CheckOut:   entity.Stay().CheckOut(),
		TotalCents: entity.TotalCost().Cents(),
		Approved:   approved,
	}

	if err := r.notifier.SendReservationDecision(ctx, mail); err != nil {
		slog.Warn("failed to send reservation notification",
			"reservation_id", entity.ID(), "error", err.Error())
	}
}
