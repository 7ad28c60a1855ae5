package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest entrada para crear un servicio del catálogo (solo admin).
type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required,oneof=desarrollo cloud seguridad consultoria soporte"`
	Price       decimal.Decimal `json:"price" validate:"min=0"`
	Duration    string          `json:"duration" validate:"required,max=100"`
	Active      *bool           `json:"active"` // default true
}

// UpdateServiceRequest entrada para actualización parcial de un servicio.
type UpdateServiceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *string          `json:"duration"`
	Active      *bool            `json:"active"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Duration    string          `json:"duration"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}
