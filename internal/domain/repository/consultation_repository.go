package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/consultoria-api/internal/domain/entity"
)

// ConsultationDetail es una consulta con los campos de presentación del
// cliente y del servicio resueltos (equivalente al populate del original).
type ConsultationDetail struct {
	entity.Consultation
	ClientName      string
	ClientEmail     string
	ClientCompany   string
	ServiceName     string
	ServiceCategory string
	ServicePrice    decimal.Decimal
}

// ConsultationRepository define el puerto de persistencia para Consultation.
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	GetByID(ctx context.Context, id string) (*entity.Consultation, error)
	GetDetailByID(ctx context.Context, id string) (*ConsultationDetail, error)
	// ListAll devuelve todas las consultas (vista admin), más recientes primero.
	ListAll(ctx context.Context) ([]*ConsultationDetail, error)
	// ListByClient devuelve solo las consultas del cliente indicado.
	ListByClient(ctx context.Context, clientID string) ([]*ConsultationDetail, error)
	Update(ctx context.Context, consultation *entity.Consultation) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id string) error
}
