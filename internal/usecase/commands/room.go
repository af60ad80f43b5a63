package commands

import (
	"context"

	"oceanview-backend/internal/domain/room"
	reqdto "oceanview-backend/internal/handler/dto/request"
	"oceanview-backend/internal/infra"
	"oceanview-backend/internal/pkg/errs"
	"oceanview-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrRoomInUse = errs.New("room has reservations and cannot be deleted")

type RoomCommands interface {
	CreateRoom(ctx context.Context, req reqdto.RoomRequest) (*queries.RoomView, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req reqdto.RoomRequest) (*queries.RoomView, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
	CreateRoomType(ctx context.Context, req reqdto.RoomTypeRequest) (*queries.RoomTypeView, error)
	UpdateRoomType(ctx context.Context, id uuid.UUID, req reqdto.RoomTypeRequest) (*queries.RoomTypeView, error)
	DeleteRoomType(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	roomRepo     RoomRepository
	roomTypeRepo RoomTypeRepository
	roomQueries  queries.RoomQueries
}

func NewRoomCommands(
	roomRepo RoomRepository,
	roomTypeRepo RoomTypeRepository,
	roomQueries queries.RoomQueries,
) RoomCommands {
	return &roomCommandsImpl{
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		roomQueries:  roomQueries,
	}
}

func (r *roomCommandsImpl) CreateRoom(ctx context.Context, req reqdto.RoomRequest) (*queries.RoomView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.roomRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, queries.ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return r.roomQueries.GetByID(ctx, entity.ID())
}

func (r *roomCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, req reqdto.RoomRequest) (*queries.RoomView, error) {
	if _, err := r.roomQueries.GetByID(ctx, id); err != nil {
		return nil, err
	}

	entity, err := req.ToDomainWithID(id)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.roomRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrRoomNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, queries.ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return r.roomQueries.GetByID(ctx, id)
}

func (r *roomCommandsImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := r.roomRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return queries.ErrRoomNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrRoomInUse
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *roomCommandsImpl) CreateRoomType(ctx context.Context, req reqdto.RoomTypeRequest) (*queries.RoomTypeView, error) {
	entity, err := room.NewRoomType(req.Name, req.Category)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.roomTypeRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return r.roomQueries.GetRoomType(ctx, entity.ID())
}

func (r *roomCommandsImpl) UpdateRoomType(ctx context.Context, id uuid.UUID, req reqdto.RoomTypeRequest) (*queries.RoomTypeView, error) {
	existing, err := r.roomQueries.GetRoomType(ctx, id)
	if err != nil {
		return nil, err
	}

	entity := room.ReconstructRoomType(existing.ID, req.Name, req.Category, existing.CreatedAt, existing.UpdatedAt)
	if err := r.roomTypeRepo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return r.roomQueries.GetRoomType(ctx, id)
}

func (r *roomCommandsImpl) DeleteRoomType(ctx context.Context, id uuid.UUID) error {
	if err := r.roomTypeRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return queries.ErrRoomTypeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
