//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"shopfront/cmd/bootstrap"
	"shopfront/cmd/bootstrap/components"
	"shopfront/internal/domain/checkout"
	"shopfront/internal/infra/db"
	"shopfront/internal/infra/payment"
	"shopfront/internal/pkg/config"
	"shopfront/internal/usecase/commands"
	"shopfront/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-test-process environment setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, config.Config, *FakePaymentGateway) {
	postgresInfo, redisInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	gateway := NewFakePaymentGateway()
	router, cfg, app := buildE2EApp(pool, dbConfig, redisInfo, gateway)
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return pool, router, cfg, gateway
}

// ------------------------------------------------------------
// Container startup
// ------------------------------------------------------------
func startContainers(t *testing.T) (ContainerInfo, ContainerInfo) {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)
	startRedisContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to resolve PostgreSQL container address")

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to resolve Redis container address")

	return postgresInfo, redisInfo
}

// ------------------------------------------------------------
// Database preparation
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// A database per test process keeps parallel packages isolated
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			waitTime := min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second)
			time.Sleep(waitTime)
			slog.Warn("retrying test database creation", "attempt", attempts+1, "error", createErr.Error())
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to open cleanup connection", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	require.NotNil(t, pool)

	err = applyMigrations(t, dbConfig)
	require.NoError(t, err, "failed to apply migrations")

	return pool, dbConfig
}

func applyMigrations(t *testing.T, dbConfig config.DBConfig) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	pool, _, err := db.Connect(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	migrationFiles := []string{
		"migrations/001_initial_schema.sql",
	}

	for _, file := range migrationFiles {
		// Resolve migration file path relative to possible working dirs (package dirs during `go test`).
		var (
			sqlContent []byte
			readErr    error
		)
		candidates := []string{
			file, // repo root
			filepath.Join("..", file),
			filepath.Join("..", "..", file),
			filepath.Join("..", "..", "..", file),
		}
		for _, cand := range candidates {
			sqlContent, readErr = os.ReadFile(cand)
			if readErr == nil {
				file = cand
				break
			}
		}
		if readErr != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, readErr)
		}

		if _, err = pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}

	return nil
}

// ------------------------------------------------------------
// Fake payment provider
// The flow under test never leaves the process: sessions created through the
// gateway port are held in memory and replayed by RetrieveSession the way
// the provider's API would.
// ------------------------------------------------------------
type FakePaymentGateway struct {
	mu       sync.Mutex
	sessions map[string]commands.CreateSessionParams
	failNext bool
}

func NewFakePaymentGateway() *FakePaymentGateway {
	return &FakePaymentGateway{sessions: make(map[string]commands.CreateSessionParams)}
}

func (g *FakePaymentGateway) FailNext() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failNext = true
}

func (g *FakePaymentGateway) CreateSession(_ context.Context, params commands.CreateSessionParams) (*commands.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failNext {
		g.failNext = false
		return nil, errors.New("fake provider unavailable")
	}

	sessionID := "cs_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	g.sessions[sessionID] = params
	return &commands.Session{
		SessionID:   sessionID,
		RedirectURL: "https://pay.example.test/" + sessionID,
	}, nil
}

func (g *FakePaymentGateway) RetrieveSession(_ context.Context, sessionID string) (*commands.SessionDetails, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	params, ok := g.sessions[sessionID]
	if !ok {
		return nil, errors.New("no such session: " + sessionID)
	}

	var subtotal int64
	for _, l := range params.Metadata.CartSnapshot {
		subtotal += l.UnitPriceCents * int64(l.Quantity)
	}
	var shipping int64
	for _, li := range params.LineItems {
		if li.Name == "Shipping" {
			shipping += li.UnitPriceCents * int64(li.Quantity)
		}
	}
	tax := int64(math.Round(float64(subtotal) * 0.10))

	return &commands.SessionDetails{
		SessionID:           sessionID,
		AmountSubtotalCents: subtotal,
		AmountTotalCents:    subtotal + tax + shipping,
		Metadata:            params.Metadata,
	}, nil
}

// FakeAddressLookup answers every postal code with the same fixed address.
type FakeAddressLookup struct{}

func (FakeAddressLookup) Lookup(_ context.Context, _ string) (*checkout.PostalLookupResult, error) {
	return &checkout.PostalLookupResult{
		Street:       "Avenida Paulista",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
	}, nil
}

// ------------------------------------------------------------
// Application assembly for E2E tests
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, dbConfig config.DBConfig, redisInfo ContainerInfo, gateway *FakePaymentGateway) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *pgxpool.Pool { return pool }),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(dbConfig, redisInfo)
		}),
	)

	// In-process stand-ins for the outbound HTTP clients
	testGatewayModule := fx.Module("testgateway",
		fx.Provide(
			fx.Annotate(
				func() *FakePaymentGateway { return gateway },
				fx.As(new(commands.PaymentGateway)),
			),
			fx.Annotate(
				func() FakeAddressLookup { return FakeAddressLookup{} },
				fx.As(new(commands.AddressLookup)),
			),
			func(cfg config.Config) *payment.SignatureVerifier {
				return payment.NewSignatureVerifier(cfg.Payment.WebhookSecret)
			},
		),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		testGatewayModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.RedisModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("failed to start fx application")
	}

	return router, cfg, app
}

func createTestConfig(dbConfig config.DBConfig, redisInfo ContainerInfo) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	testConfig.Redis.Addr = redisInfo.Host + ":" + redisInfo.Port.Port()
	return testConfig
}

// ------------------------------------------------------------
// Container helpers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_wal_size=512MB",
				"-c", "shared_buffers=256MB",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start PostgreSQL container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate PostgreSQL container", "error", err.Error())
				}
			}
		})
	})
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
			Name:         "redis-e2e",
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 60)
		require.NoError(t, err, "failed to start Redis container")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate Redis container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite embedded by every E2E test package
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Gateway *FakePaymentGateway
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	db, router, cfg, gateway := setupE2EEnvironment(t)
	s.DB = db
	s.Router = router
	s.Config = cfg
	s.Gateway = gateway
	require.NotNil(t, db, "failed to set up database")
	require.NotEmpty(t, s.Config, "failed to obtain config")
	require.NotNil(t, s.Router, "failed to set up router")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "failed to reset database state")
}
