package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/consultoria-api/internal/domain"
	"github.com/jhoicas/consultoria-api/internal/domain/entity"
	"github.com/jhoicas/consultoria-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	pool *pgxpool.Pool
}

// NewServiceRepository construye el adaptador de persistencia para servicios.
func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{pool: pool}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (id, name, description, category, price, duration, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Description, s.Category, s.Price, s.Duration, s.Active, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID. Devuelve (nil, nil) si no existe.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	query := `
		SELECT id, name, description, category, price, duration, active, created_at
		FROM services WHERE id = $1`
	var s entity.Service
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Category, &s.Price, &s.Duration, &s.Active, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return &s, nil
}

// List lista servicios, más recientes primero. onlyActive filtra el catálogo público.
func (r *ServiceRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Service, error) {
	query := `
		SELECT id, name, description, category, price, duration, active, created_at
		FROM services`
	if onlyActive {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.Price, &s.Duration, &s.Active, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un servicio.
func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services SET name = $2, description = $3, category = $4, price = $5, duration = $6, active = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Description, s.Category, s.Price, s.Duration, s.Active,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio por ID. Devuelve domain.ErrNotFound si no existe.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
