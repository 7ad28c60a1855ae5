package entity

import "time"

// Prioridades válidas para Report.
const (
	PriorityBaja  = "baja"
	PriorityMedia = "media"
	PriorityAlta  = "alta"
)

// ValidReportPriority verifica que la prioridad pertenezca al enum.
func ValidReportPriority(p string) bool {
	return p == PriorityBaja || p == PriorityMedia || p == PriorityAlta
}

// Estados válidos para Report.
const (
	ReportOpen       = "open"
	ReportInProgress = "in_progress"
	ReportResolved   = "resolved"
	ReportClosed     = "closed"
)

// ValidReportStatus verifica que el estado pertenezca al enum.
func ValidReportStatus(s string) bool {
	switch s {
	case ReportOpen, ReportInProgress, ReportResolved, ReportClosed:
		return true
	}
	return false
}

// CanTransitionReport decide si el cambio de estado es legal.
// Grafo: open -> in_progress; open|in_progress -> {resolved, closed};
// resolved -> closed. closed es terminal. Reescribir el mismo estado es válido
// (permite ajustar la prioridad sin mover el estado).
func CanTransitionReport(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case ReportOpen:
		return to == ReportInProgress || to == ReportResolved || to == ReportClosed
	case ReportInProgress:
		return to == ReportResolved || to == ReportClosed
	case ReportResolved:
		return to == ReportClosed
	}
	return false
}

// Report es un reporte de soporte enviado por un cliente.
// El estado y la prioridad solo los muta admin después de la creación.
type Report struct {
	ID          string
	ClientID    string
	Title       string
	Description string
	Priority    string // baja, media, alta
	Status      string // open, in_progress, resolved, closed
	CreatedAt   time.Time
}
