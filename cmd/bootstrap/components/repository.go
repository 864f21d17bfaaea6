package components

import (
	"vouch-backend/internal/infra/db"
	"vouch-backend/internal/infra/readstore"
	repo_impl "vouch-backend/internal/infra/repository"
	"vouch-backend/internal/usecase/commands"
	"vouch-backend/internal/usecase/queries"
	"vouch-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			shared.NewPgxTxRunner,
			fx.As(new(shared.TxRunner)),
		),
		// Write-side repositories
		fx.Annotate(
			repo_impl.NewLocationRepository,
			fx.As(new(commands.LocationRepository)),
		),
		fx.Annotate(
			repo_impl.NewAttemptRepository,
			fx.As(new(commands.AttemptRepository)),
		),
		fx.Annotate(
			repo_impl.NewLoyaltyRepository,
			fx.As(new(commands.LoyaltyRepository)),
		),
		fx.Annotate(
			repo_impl.NewCampaignRepository,
			fx.As(new(commands.CampaignRepository)),
		),
		fx.Annotate(
			repo_impl.NewRewardRepository,
			fx.As(new(commands.RewardRepository)),
		),
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		// Read stores for queries
		fx.Annotate(
			readstore.NewVouchReadStore,
			fx.As(new(queries.VouchStatusReads)),
		),
		fx.Annotate(
			readstore.NewRewardReadStore,
			fx.As(new(queries.RewardReads)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReads)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
