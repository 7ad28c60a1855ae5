package repository

import (
	"context"

	"github.com/jhoicas/consultoria-api/internal/domain/entity"
)

// ReportDetail es un reporte con los campos de presentación del cliente resueltos.
type ReportDetail struct {
	entity.Report
	ClientName    string
	ClientEmail   string
	ClientCompany string
}

// ReportRepository define el puerto de persistencia para Report.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	GetDetailByID(ctx context.Context, id string) (*ReportDetail, error)
	// ListAll devuelve todos los reportes (vista admin), más recientes primero.
	ListAll(ctx context.Context) ([]*ReportDetail, error)
	// ListByClient devuelve solo los reportes del cliente indicado.
	ListByClient(ctx context.Context, clientID string) ([]*ReportDetail, error)
	Update(ctx context.Context, report *entity.Report) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id string) error
}
