package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Consultation.
const (
	ConsultationPending   = "pending"
	ConsultationApproved  = "approved"
	ConsultationRejected  = "rejected"
	ConsultationCompleted = "completed"
)

// ValidConsultationStatus verifica que el estado pertenezca al enum.
func ValidConsultationStatus(s string) bool {
	switch s {
	case ConsultationPending, ConsultationApproved, ConsultationRejected, ConsultationCompleted:
		return true
	}
	return false
}

// CanTransitionConsultation decide si el cambio de estado es legal.
// Grafo: pending -> {approved, rejected}; approved -> completed.
// rejected y completed son terminales. Reescribir el mismo estado es válido
// (permite actualizar notas sin mover el estado).
func CanTransitionConsultation(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case ConsultationPending:
		return to == ConsultationApproved || to == ConsultationRejected
	case ConsultationApproved:
		return to == ConsultationCompleted
	}
	return false
}

// Consultation es una solicitud de consultoría de un cliente sobre un servicio del catálogo.
// ClientID y ServiceID referencian registros existentes; el estado solo lo muta admin.
type Consultation struct {
	ID          string
	ClientID    string
	ServiceID   string
	Description string
	Budget      *decimal.Decimal // opcional, >= 0
	Deadline    *time.Time       // opcional
	Status      string           // pending, approved, rejected, completed
	Notes       string           // notas del admin
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
