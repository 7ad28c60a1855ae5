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

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación del puerto ReportRepository sobre PostgreSQL.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de persistencia para reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Create persiste un nuevo reporte. FK inválida -> domain.ErrNotFound.
func (r *ReportRepo) Create(ctx context.Context, rep *entity.Report) error {
	query := `
		INSERT INTO reports (id, client_id, title, description, priority, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		rep.ID, rep.ClientID, rep.Title, rep.Description, rep.Priority, rep.Status, rep.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene un reporte por ID sin joins. Devuelve (nil, nil) si no existe.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	query := `
		SELECT id, client_id, title, description, priority, status, created_at
		FROM reports WHERE id = $1`
	var rep entity.Report
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rep.ID, &rep.ClientID, &rep.Title, &rep.Description, &rep.Priority, &rep.Status, &rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report by id: %w", err)
	}
	return &rep, nil
}

const reportDetailQuery = `
	SELECT r.id, r.client_id, r.title, r.description, r.priority, r.status, r.created_at,
	       u.name, u.email, u.company
	FROM reports r
	JOIN users u ON u.id = r.client_id`

// GetDetailByID obtiene un reporte con cliente resuelto.
func (r *ReportRepo) GetDetailByID(ctx context.Context, id string) (*repository.ReportDetail, error) {
	row := r.pool.QueryRow(ctx, reportDetailQuery+` WHERE r.id = $1`, id)
	d, err := scanReportDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report detail: %w", err)
	}
	return d, nil
}

// ListAll devuelve todos los reportes con joins, más recientes primero (vista admin).
func (r *ReportRepo) ListAll(ctx context.Context) ([]*repository.ReportDetail, error) {
	rows, err := r.pool.Query(ctx, reportDetailQuery+` ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return collectReportDetails(rows)
}

// ListByClient devuelve los reportes de un cliente, más recientes primero.
func (r *ReportRepo) ListByClient(ctx context.Context, clientID string) ([]*repository.ReportDetail, error) {
	rows, err := r.pool.Query(ctx, reportDetailQuery+` WHERE r.client_id = $1 ORDER BY r.created_at DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list reports by client: %w", err)
	}
	return collectReportDetails(rows)
}

// Update actualiza estado y prioridad de un reporte.
func (r *ReportRepo) Update(ctx context.Context, rep *entity.Report) error {
	query := `
		UPDATE reports SET priority = $2, status = $3
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, rep.ID, rep.Priority, rep.Status)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

// Delete elimina un reporte por ID. Devuelve domain.ErrNotFound si no existe.
func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanReportDetail(row pgx.Row) (*repository.ReportDetail, error) {
	var d repository.ReportDetail
	err := row.Scan(
		&d.ID, &d.ClientID, &d.Title, &d.Description, &d.Priority, &d.Status, &d.CreatedAt,
		&d.ClientName, &d.ClientEmail, &d.ClientCompany,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectReportDetails(rows pgx.Rows) ([]*repository.ReportDetail, error) {
	defer rows.Close()
	var list []*repository.ReportDetail
	for rows.Next() {
		d, err := scanReportDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
