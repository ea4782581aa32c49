package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nitinmeharia/rule-engine/internal/domain"
)

// NamespaceStore defines the persistence operations the handlers need.
type NamespaceStore interface {
	Create(ctx context.Context, namespace *domain.Namespace) error
	GetByID(ctx context.Context, id string) (*domain.Namespace, error)
	List(ctx context.Context) ([]*domain.Namespace, error)
	Ping(ctx context.Context) error
	Close()
}

// NamespaceRepository implements NamespaceStore on Postgres.
type NamespaceRepository struct {
	pool *pgxpool.Pool
}

// NewNamespaceRepository connects a pgx pool to the given database URL.
func NewNamespaceRepository(ctx context.Context, databaseURL string) (*NamespaceRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &NamespaceRepository{pool: pool}, nil
}

// Create inserts a new namespace.
func (r *NamespaceRepository) Create(ctx context.Context, namespace *domain.Namespace) error {
	description := &namespace.Description
	if namespace.Description == "" {
		description = nil
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO namespaces (id, description, created_by, created_at) VALUES ($1, $2, $3, now())`,
		namespace.ID, description, namespace.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create namespace: %w", err)
	}
	return nil
}

// GetByID retrieves a namespace by ID.
func (r *NamespaceRepository) GetByID(ctx context.Context, id string) (*domain.Namespace, error) {
	var ns domain.Namespace
	var description *string

	err := r.pool.QueryRow(ctx,
		`SELECT id, description, created_at, created_by FROM namespaces WHERE id = $1`,
		id,
	).Scan(&ns.ID, &description, &ns.CreatedAt, &ns.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get namespace: %w", err)
	}

	if description != nil {
		ns.Description = *description
	}
	return &ns, nil
}

// List retrieves all namespaces ordered by creation time.
func (r *NamespaceRepository) List(ctx context.Context) ([]*domain.Namespace, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, description, created_at, created_by FROM namespaces ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	defer rows.Close()

	var result []*domain.Namespace
	for rows.Next() {
		var ns domain.Namespace
		var description *string
		if err := rows.Scan(&ns.ID, &description, &ns.CreatedAt, &ns.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan namespace: %w", err)
		}
		if description != nil {
			ns.Description = *description
		}
		result = append(result, &ns)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	return result, nil
}

// Ping reports database connectivity.
func (r *NamespaceRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the connection pool.
func (r *NamespaceRepository) Close() {
	r.pool.Close()
}
