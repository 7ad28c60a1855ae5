package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateConsultationRequest entrada para crear una consulta. El cliente se
// toma siempre del token; un campo client en el body se ignora.
// Deadline acepta "2006-01-02" o RFC3339.
type CreateConsultationRequest struct {
	ServiceID   string           `json:"service_id" validate:"required,uuid"`
	Description string           `json:"description" validate:"required"`
	Budget      *decimal.Decimal `json:"budget" validate:"omitempty,min=0"`
	Deadline    *string          `json:"deadline"`
}

// UpdateConsultationRequest entrada para actualización admin: estado y/o notas.
type UpdateConsultationRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ConsultationServiceInfo campos de presentación del servicio referenciado.
type ConsultationServiceInfo struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// ConsultationResponse salida de una consulta. Client solo se incluye en las
// vistas admin; en my-consultations el dueño es el propio solicitante.
type ConsultationResponse struct {
	ID          string                  `json:"id"`
	Client      *ClientInfo             `json:"client,omitempty"`
	Service     ConsultationServiceInfo `json:"service"`
	Description string                  `json:"description"`
	Budget      *decimal.Decimal        `json:"budget,omitempty"`
	Deadline    *time.Time              `json:"deadline,omitempty"`
	Status      string                  `json:"status"`
	Notes       string                  `json:"notes,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}
