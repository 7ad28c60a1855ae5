package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/consultoria-api/internal/application/dto"
	"github.com/jhoicas/consultoria-api/internal/domain"
	"github.com/jhoicas/consultoria-api/internal/domain/entity"
	"github.com/jhoicas/consultoria-api/internal/domain/repository"
)

// notifyTimeout límite para el envío de correos desacoplado de la petición.
const notifyTimeout = 30 * time.Second

// ReportUseCase casos de uso del libro de reportes de soporte.
// La creación dispara el notificador en background; su resultado solo es
// observable en logs y nunca afecta la respuesta de creación.
type ReportUseCase struct {
	repo     repository.ReportRepository
	notifier ReportNotifier
}

// NewReportUseCase construye el caso de uso. notifier puede ser nil (sin correo).
func NewReportUseCase(repo repository.ReportRepository, notifier ReportNotifier) *ReportUseCase {
	return &ReportUseCase{repo: repo, notifier: notifier}
}

// Create crea un reporte para el cliente autenticado. El client del body se
// ignora: clientID viene siempre del subject del token. Prioridad por defecto
// media; estado inicial siempre open.
func (uc *ReportUseCase) Create(ctx context.Context, clientID string, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedia
	}
	if !entity.ValidReportPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	report := &entity.Report{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Status:      entity.ReportOpen,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	detail, err := uc.repo.GetDetailByID(ctx, report.ID)
	if err != nil {
		return nil, err
	}
	uc.dispatchNotifications(detail)
	return toReportResponse(detail, false), nil
}

// dispatchNotifications envía la confirmación al cliente y la alerta al admin
// en una goroutine propia. La petición HTTP no espera por los envíos y los
// fallos se registran y se descartan.
func (uc *ReportUseCase) dispatchNotifications(d *repository.ReportDetail) {
	if uc.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.SendReportConfirmation(ctx, d.ClientEmail, d.ClientName, d.Title, d.Description); err != nil {
			log.Error().Err(err).Str("report_id", d.ID).Msg("envío de confirmación al cliente")
		}
		if err := uc.notifier.SendAdminAlert(ctx, d.ClientName, d.ClientEmail, d.Title); err != nil {
			log.Error().Err(err).Str("report_id", d.ID).Msg("envío de alerta al admin")
		}
	}()
}

// ListMine devuelve los reportes del cliente autenticado, sin datos de cliente.
func (uc *ReportUseCase) ListMine(ctx context.Context, clientID string) ([]dto.ReportResponse, error) {
	list, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toReportResponses(list, false), nil
}

// ListAll devuelve todos los reportes con cliente resuelto (vista admin).
func (uc *ReportUseCase) ListAll(ctx context.Context) ([]dto.ReportResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toReportResponses(list, true), nil
}

// Update aplica cambios admin: estado validado contra el grafo de transiciones
// y/o prioridad. Devuelve (nil, nil) si el reporte no existe.
func (uc *ReportUseCase) Update(ctx context.Context, id string, in dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	report, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil
	}
	if in.Status != nil {
		if !entity.ValidReportStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if !entity.CanTransitionReport(report.Status, *in.Status) {
			return nil, domain.ErrInvalidTransition
		}
		report.Status = *in.Status
	}
	if in.Priority != nil {
		if !entity.ValidReportPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		report.Priority = *in.Priority
	}
	if err := uc.repo.Update(ctx, report); err != nil {
		return nil, err
	}
	detail, err := uc.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReportResponse(detail, true), nil
}

// Delete elimina un reporte. Devuelve domain.ErrNotFound si el id no existe.
func (uc *ReportUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toReportResponse(d *repository.ReportDetail, includeClient bool) *dto.ReportResponse {
	if d == nil {
		return nil
	}
	resp := &dto.ReportResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
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

func toReportResponses(list []*repository.ReportDetail, includeClient bool) []dto.ReportResponse {
	items := make([]dto.ReportResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toReportResponse(d, includeClient))
	}
	return items
}
