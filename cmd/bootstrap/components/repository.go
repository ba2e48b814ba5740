package components

import (
	"shopfront/internal/infra/cache"
	"shopfront/internal/infra/db"
	"shopfront/internal/infra/flowstore"
	"shopfront/internal/infra/readstore"
	repo_impl "shopfront/internal/infra/repository"
	"shopfront/internal/infra/uow"
	"shopfront/internal/pkg/config"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			uow.NewPostgresUnitOfWork,
			fx.As(new(commands.UnitOfWork)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductReader)),
			fx.As(new(commands.StockRepository)),
		),
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewWebhookEventRepository,
			fx.As(new(commands.WebhookAuditRepository)),
		),
		fx.Annotate(
			flowstore.NewMemory,
			fx.As(new(commands.FlowStore)),
		),
		// Read side
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			NewProductCache,
			fx.As(new(queries.ProductCache)),
			fx.As(new(commands.CatalogCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewProductCache(client *redis.Client, cfg config.Config) *cache.ProductCache {
	return cache.NewProductCache(client, cfg.Redis)
}
