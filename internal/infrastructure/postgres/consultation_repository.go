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

var _ repository.ConsultationRepository = (*ConsultationRepo)(nil)

// ConsultationRepo implementación del puerto ConsultationRepository sobre PostgreSQL.
type ConsultationRepo struct {
	pool *pgxpool.Pool
}

// NewConsultationRepository construye el adaptador de persistencia para consultas.
func NewConsultationRepository(pool *pgxpool.Pool) *ConsultationRepo {
	return &ConsultationRepo{pool: pool}
}

// Create persiste una nueva consulta. FK inválida -> domain.ErrNotFound
// (el cliente o el servicio referenciado no existe).
func (r *ConsultationRepo) Create(ctx context.Context, c *entity.Consultation) error {
	query := `
		INSERT INTO consultations (id, client_id, service_id, description, budget, deadline, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.ClientID, c.ServiceID, c.Description, c.Budget, c.Deadline, c.Status, c.Notes,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}

// GetByID obtiene una consulta por ID sin joins. Devuelve (nil, nil) si no existe.
func (r *ConsultationRepo) GetByID(ctx context.Context, id string) (*entity.Consultation, error) {
	query := `
		SELECT id, client_id, service_id, description, budget, deadline, status, notes, created_at, updated_at
		FROM consultations WHERE id = $1`
	var c entity.Consultation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ClientID, &c.ServiceID, &c.Description, &c.Budget, &c.Deadline, &c.Status, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consultation by id: %w", err)
	}
	return &c, nil
}

const consultationDetailQuery = `
	SELECT c.id, c.client_id, c.service_id, c.description, c.budget, c.deadline, c.status, c.notes,
	       c.created_at, c.updated_at,
	       u.name, u.email, u.company,
	       s.name, s.category, s.price
	FROM consultations c
	JOIN users u ON u.id = c.client_id
	JOIN services s ON s.id = c.service_id`

// GetDetailByID obtiene una consulta con cliente y servicio resueltos.
func (r *ConsultationRepo) GetDetailByID(ctx context.Context, id string) (*repository.ConsultationDetail, error) {
	row := r.pool.QueryRow(ctx, consultationDetailQuery+` WHERE c.id = $1`, id)
	d, err := scanConsultationDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consultation detail: %w", err)
	}
	return d, nil
}

// ListAll devuelve todas las consultas con joins, más recientes primero (vista admin).
func (r *ConsultationRepo) ListAll(ctx context.Context) ([]*repository.ConsultationDetail, error) {
	rows, err := r.pool.Query(ctx, consultationDetailQuery+` ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return collectConsultationDetails(rows)
}

// ListByClient devuelve las consultas de un cliente, más recientes primero.
func (r *ConsultationRepo) ListByClient(ctx context.Context, clientID string) ([]*repository.ConsultationDetail, error) {
	rows, err := r.pool.Query(ctx, consultationDetailQuery+` WHERE c.client_id = $1 ORDER BY c.created_at DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list consultations by client: %w", err)
	}
	return collectConsultationDetails(rows)
}

// Update actualiza estado, notas y updated_at de una consulta.
func (r *ConsultationRepo) Update(ctx context.Context, c *entity.Consultation) error {
	query := `
		UPDATE consultations SET status = $2, notes = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, c.ID, c.Status, c.Notes, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update consultation: %w", err)
	}
	return nil
}

// Delete elimina una consulta por ID. Devuelve domain.ErrNotFound si no existe.
func (r *ConsultationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM consultations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consultation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanConsultationDetail(row pgx.Row) (*repository.ConsultationDetail, error) {
	var d repository.ConsultationDetail
	err := row.Scan(
		&d.ID, &d.ClientID, &d.ServiceID, &d.Description, &d.Budget, &d.Deadline, &d.Status, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt,
		&d.ClientName, &d.ClientEmail, &d.ClientCompany,
		&d.ServiceName, &d.ServiceCategory, &d.ServicePrice,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectConsultationDetails(rows pgx.Rows) ([]*repository.ConsultationDetail, error) {
	defer rows.Close()
	var list []*repository.ConsultationDetail
	for rows.Next() {
		d, err := scanConsultationDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consultation: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
