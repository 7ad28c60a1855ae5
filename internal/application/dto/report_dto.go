package dto

import "time"

// CreateReportRequest entrada para crear un reporte. El cliente se toma
// siempre del token; un campo client en el body se ignora.
type CreateReportRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=baja media alta"`
}

// UpdateReportRequest entrada para actualización admin: estado y/o prioridad.
type UpdateReportRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

// ReportResponse salida de un reporte. Client solo en vistas admin.
type ReportResponse struct {
	ID          string      `json:"id"`
	Client      *ClientInfo `json:"client,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Priority    string      `json:"priority"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
