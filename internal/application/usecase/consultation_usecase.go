package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consultoria-api/internal/application/dto"
	"github.com/jhoicas/consultoria-api/internal/domain"
	"github.com/jhoicas/consultoria-api/internal/domain/entity"
	"github.com/jhoicas/consultoria-api/internal/domain/repository"
)

// ConsultationUseCase casos de uso del libro de consultas.
// Los clientes crean; solo admin muta estado, notas y elimina.
type ConsultationUseCase struct {
	repo        repository.ConsultationRepository
	serviceRepo repository.ServiceRepository
}

// NewConsultationUseCase construye el caso de uso.
func NewConsultationUseCase(repo repository.ConsultationRepository, serviceRepo repository.ServiceRepository) *ConsultationUseCase {
	return &ConsultationUseCase{repo: repo, serviceRepo: serviceRepo}
}

// Create crea una consulta para el cliente autenticado. El client del body se
// ignora: clientID viene siempre del subject del token. El servicio debe
// existir (ErrNotFound si no resuelve). El estado inicial es siempre pending.
func (uc *ConsultationUseCase) Create(ctx context.Context, clientID string, in dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	service, err := uc.serviceRepo.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.Budget != nil && in.Budget.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	deadline, err := parseDeadline(in.Deadline)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	consultation := &entity.Consultation{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		ServiceID:   in.ServiceID,
		Description: in.Description,
		Budget:      in.Budget,
		Deadline:    deadline,
		Status:      entity.ConsultationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, consultation); err != nil {
		return nil, err
	}
	detail, err := uc.repo.GetDetailByID(ctx, consultation.ID)
	if err != nil {
		return nil, err
	}
	return toConsultationResponse(detail, false), nil
}

// ListMine devuelve las consultas del cliente autenticado, sin datos de cliente.
func (uc *ConsultationUseCase) ListMine(ctx context.Context, clientID string) ([]dto.ConsultationResponse, error) {
	list, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toConsultationResponses(list, false), nil
}

// ListAll devuelve todas las consultas con cliente y servicio resueltos (vista admin).
func (uc *ConsultationUseCase) ListAll(ctx context.Context) ([]dto.ConsultationResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toConsultationResponses(list, true), nil
}

// Update aplica cambios admin: estado validado contra el grafo de transiciones
// y/o notas. Devuelve (nil, nil) si la consulta no existe.
func (uc *ConsultationUseCase) Update(ctx context.Context, id string, in dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	consultation, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, nil
	}
	if in.Status != nil {
		if !entity.ValidConsultationStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if !entity.CanTransitionConsultation(consultation.Status, *in.Status) {
			return nil, domain.ErrInvalidTransition
		}
		consultation.Status = *in.Status
	}
	if in.Notes != nil {
		consultation.Notes = *in.Notes
	}
	consultation.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, consultation); err != nil {
		return nil, err
	}
	detail, err := uc.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toConsultationResponse(detail, true), nil
}

// Delete elimina una consulta. Devuelve domain.ErrNotFound si el id no existe.
func (uc *ConsultationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// parseDeadline acepta fecha simple ("2006-01-02") o RFC3339.
func parseDeadline(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toConsultationResponse(d *repository.ConsultationDetail, includeClient bool) *dto.ConsultationResponse {
	if d == nil {
		return nil
	}
	resp := &dto.ConsultationResponse{
		ID: d.ID,
		Service: dto.ConsultationServiceInfo{
			ID:       d.ServiceID,
			Name:     d.ServiceName,
			Category: d.ServiceCategory,
			Price:    d.ServicePrice,
		},
		Description: d.Description,
		Budget:      d.Budget,
		Deadline:    d.Deadline,
		Status:      d.Status,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if includeClient {
		resp.Client = &dto.ClientInfo{
			ID:      d.ClientID,
			Name:    d.ClientName,
			Email:   d.ClientEmail,
			Company: d.ClientCompany,
		}
	}
	return resp
}

func toConsultationResponses(list []*repository.ConsultationDetail, includeClient bool) []dto.ConsultationResponse {
	items := make([]dto.ConsultationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toConsultationResponse(d, includeClient))
	}
	return items
}
