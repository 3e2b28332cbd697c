// Package testutils builds databases and seed data for tests.
package testutils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Account ids used by Seed.
const (
	OriginAccountID      int64 = 10000
	DestinationAccountID int64 = 10001
	ForeignAccountID     int64 = 10002
)

// Password is the plain password of every seeded user.
const Password = "123456"

// Fixture is the seeded data: Owner holds the origin and destination
// accounts, Stranger holds the foreign account.
type Fixture struct {
	Owner       model.User
	Stranger    model.User
	Origin      model.Account
	Destination model.Account
	Foreign     model.Account
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestDB opens a private in-memory SQLite database with the schema applied.
func NewTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(tb, err)

	sqlDB, err := db.DB()
	require.NoError(tb, err)
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(tb, db.AutoMigrate(model.All()...))
	return db
}

// NewPostgresDB starts a Postgres container and applies the migrations.
// The test is skipped in short mode.
func NewPostgresDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(tb, err)

	db, err := infra.NewDBConnection(&config.DB{Url: dsn}, "test")
	require.NoError(tb, err)
	require.NoError(tb, infra.MigrateUp(db))
	return db
}

// Seed inserts the standard fixture.
func Seed(tb testing.TB, db *gorm.DB) Fixture {
	tb.Helper()
	utils.PasswordCost = bcrypt.MinCost
	hash, err := utils.HashPassword(Password)
	require.NoError(tb, err)

	suffix := uuid.NewString()[:8]
	f := Fixture{
		Owner:    model.User{Name: "Owner", Mail: "owner-" + suffix + "@mail.com", Passwd: hash},
		Stranger: model.User{Name: "Stranger", Mail: "stranger-" + suffix + "@mail.com", Passwd: hash},
	}
	require.NoError(tb, db.Create(&f.Owner).Error)
	require.NoError(tb, db.Create(&f.Stranger).Error)

	f.Origin = model.Account{ID: OriginAccountID, Name: "Origin", UserID: f.Owner.ID}
	f.Destination = model.Account{ID: DestinationAccountID, Name: "Destination", UserID: f.Owner.ID}
	f.Foreign = model.Account{ID: ForeignAccountID, Name: "Foreign", UserID: f.Stranger.ID}
	require.NoError(tb, db.Create(&f.Origin).Error)
	require.NoError(tb, db.Create(&f.Destination).Error)
	require.NoError(tb, db.Create(&f.Foreign).Error)
	return f
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
