package components

import (
	"oceanview-backend/internal/infra/db"
	"oceanview-backend/internal/infra/readstore"
	"oceanview-backend/internal/infra/writerepo"
	"oceanview-backend/internal/usecase/commands"
	"oceanview-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writerepoModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewInvoiceReadStore,
			fx.As(new(queries.InvoiceReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomTypeReadStore,
			fx.As(new(queries.RoomTypeReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)

var writerepoModule = fx.Module("persistence/writerepo",
	fx.Provide(
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			writerepo.NewInvoiceRepository,
			fx.As(new(commands.InvoiceRepository)),
		),
		// Room repository doubles as the read-only room snapshot source
		// used by the reservation write path.
		fx.Annotate(
			writerepo.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
			fx.As(new(commands.RoomReader)),
		),
		fx.Annotate(
			writerepo.NewRoomTypeRepository,
			fx.As(new(commands.RoomTypeRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.GuestReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
