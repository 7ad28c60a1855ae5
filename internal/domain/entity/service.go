package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas para Service.
const (
	CategoryDesarrollo  = "desarrollo"
	CategoryCloud       = "cloud"
	CategorySeguridad   = "seguridad"
	CategoryConsultoria = "consultoria"
	CategorySoporte     = "soporte"
)

// ValidCategory verifica que la categoría pertenezca al catálogo cerrado.
func ValidCategory(c string) bool {
	switch c {
	case CategoryDesarrollo, CategoryCloud, CategorySeguridad, CategoryConsultoria, CategorySoporte:
		return true
	}
	return false
}

// Service representa una oferta del catálogo administrado por admin.
// Active actúa como borrado suave: los servicios inactivos no aparecen en el
// catálogo público pero las consultas que los referencian siguen siendo válidas.
type Service struct {
	ID          string
	Name        string
	Description string
	Category    string // desarrollo, cloud, seguridad, consultoria, soporte
	Price       decimal.Decimal
	Duration    string // texto libre: "2 semanas", "1 mes", etc.
	Active      bool
	CreatedAt   time.Time
}
