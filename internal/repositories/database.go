package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/ensaladazo/ensaladazo-backend/internal/config"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so a repository can be bound
// to a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Repository struct {
	DB          *sql.DB
	User        UserRepository
	Product     ProductRepository
	Cart        CartRepository
	AuthUser    AuthUserRepository
	Contact     ContactRepository
	CustomSalad CustomSaladRepository
}

func New(cfg *config.Config) (*Repository, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.name", cfg.Database.Name),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), defaultBootstrapTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("✅ Database schema ready", slog.String("database", cfg.Database.Name))

	return NewWithDB(db), nil
}

func NewWithDB(db *sql.DB) *Repository {
	return &Repository{
		DB:          db,
		User:        NewUserRepo(db),
		Product:     NewProductRepo(db),
		Cart:        NewCartRepo(db),
		AuthUser:    NewAuthUserRepo(db),
		Contact:     NewContactRepo(db),
		CustomSalad: NewCustomSaladRepo(db),
	}
}

func (p *Repository) Close() error {
	return p.DB.Close()
}

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	numericOutOfRange   = "22003"
	stringTooLong       = "22001"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint
// failure.
func IsUniqueViolation(err error) bool {
	return hasPQCode(err, uniqueViolation)
}

// IsForeignKeyViolation reports whether err is a Postgres foreign key
// failure, e.g. deleting a product that still sits in a cart.
func IsForeignKeyViolation(err error) bool {
	return hasPQCode(err, foreignKeyViolation)
}

// IsOutOfRange reports whether Postgres rejected a value for not fitting its
// column: a number past the column's precision or a string past its length.
func IsOutOfRange(err error) bool {
	return hasPQCode(err, numericOutOfRange) || hasPQCode(err, stringTooLong)
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}

	return false
}

// expectOneRow converts a zero rows-affected result into sql.ErrNoRows.
func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
