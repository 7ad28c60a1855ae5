package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consultoria-api/internal/application/dto"
	"github.com/jhoicas/consultoria-api/internal/application/usecase"
	"github.com/jhoicas/consultoria-api/internal/domain"
	"github.com/jhoicas/consultoria-api/internal/domain/entity"
)

func seedService(t *testing.T, repo *fakeServiceRepo, name string, active bool) *entity.Service {
	t.Helper()
	s := &entity.Service{
		ID:       "svc-" + name,
		Name:     name,
		Category: entity.CategoryDesarrollo,
		Price:    decimal.NewFromInt(1500),
		Duration: "2 semanas",
		Active:   active,
	}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestConsultationCreate_EstadoInicialPending(t *testing.T) {
	services := newFakeServiceRepo()
	repo := newFakeConsultationRepo(services)
	uc := usecase.NewConsultationUseCase(repo, services)
	svc := seedService(t, services, "web", true)

	out, err := uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{
		ServiceID:   svc.ID,
		Description: "necesito una tienda en línea",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.ConsultationPending, out.Status)
	assert.Equal(t, svc.Name, out.Service.Name)
	assert.Nil(t, out.Client, "la vista del cliente no expone datos de cliente")

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "client-1", stored.ClientID, "el dueño sale del token, nunca del body")
}

func TestConsultationCreate_ServicioInexistente(t *testing.T) {
	services := newFakeServiceRepo()
	uc := usecase.NewConsultationUseCase(newFakeConsultationRepo(services), services)

	_, err := uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{
		ServiceID:   "no-existe",
		Description: "algo",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConsultationCreate_PresupuestoNegativo(t *testing.T) {
	services := newFakeServiceRepo()
	uc := usecase.NewConsultationUseCase(newFakeConsultationRepo(services), services)
	svc := seedService(t, services, "web", true)

	neg := decimal.NewFromInt(-100)
	_, err := uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{
		ServiceID: svc.ID,
		Budget:    &neg,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConsultationCreate_DeadlineFormatos(t *testing.T) {
	services := newFakeServiceRepo()
	repo := newFakeConsultationRepo(services)
	uc := usecase.NewConsultationUseCase(repo, services)
	svc := seedService(t, services, "web", true)

	simple := "2026-10-01"
	out, err := uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{
		ServiceID: svc.ID,
		Deadline:  &simple,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Deadline)
	assert.Equal(t, 2026, out.Deadline.Year())

	malo := "el mes que viene"
	_, err = uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{
		ServiceID: svc.ID,
		Deadline:  &malo,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConsultationUpdate_TransicionValida(t *testing.T) {
	services := newFakeServiceRepo()
	repo := newFakeConsultationRepo(services)
	uc := usecase.NewConsultationUseCase(repo, services)
	svc := seedService(t, services, "web", true)
	repo.clients["client-1"] = &entity.User{ID: "client-1", Name: "Alice", Email: "alice@x.com"}

	created, err := uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{ServiceID: svc.ID})
	require.NoError(t, err)

	status := entity.ConsultationApproved
	notes := "aprobada tras revisión"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateConsultationRequest{Status: &status, Notes: &notes})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.ConsultationApproved, out.Status)
	assert.Equal(t, notes, out.Notes)
	require.NotNil(t, out.Client, "la vista admin incluye al cliente")
	assert.Equal(t, "alice@x.com", out.Client.Email)
	assert.True(t, out.UpdatedAt.After(out.CreatedAt) || out.UpdatedAt.Equal(out.CreatedAt))
}

func TestConsultationUpdate_TransicionInvalida(t *testing.T) {
	services := newFakeServiceRepo()
	repo := newFakeConsultationRepo(services)
	uc := usecase.NewConsultationUseCase(repo, services)
	svc := seedService(t, services, "web", true)

	created, err := uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{ServiceID: svc.ID})
	require.NoError(t, err)

	// pending no puede saltar directo a completed
	status := entity.ConsultationCompleted
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateConsultationRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, _ := repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, entity.ConsultationPending, stored.Status, "una transición rechazada no muta el registro")
}

func TestConsultationUpdate_EstadoDesconocido(t *testing.T) {
	services := newFakeServiceRepo()
	repo := newFakeConsultationRepo(services)
	uc := usecase.NewConsultationUseCase(repo, services)
	svc := seedService(t, services, "web", true)

	created, err := uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{ServiceID: svc.ID})
	require.NoError(t, err)

	status := "archivada"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateConsultationRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConsultationUpdate_NoExiste(t *testing.T) {
	services := newFakeServiceRepo()
	uc := usecase.NewConsultationUseCase(newFakeConsultationRepo(services), services)

	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateConsultationRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestConsultationListMine_SoloDelCliente(t *testing.T) {
	services := newFakeServiceRepo()
	repo := newFakeConsultationRepo(services)
	uc := usecase.NewConsultationUseCase(repo, services)
	svc := seedService(t, services, "web", true)

	_, err := uc.Create(context.Background(), "client-1", dto.CreateConsultationRequest{ServiceID: svc.ID})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "client-2", dto.CreateConsultationRequest{ServiceID: svc.ID})
	require.NoError(t, err)

	mine, err := uc.ListMine(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Nil(t, mine[0].Client)

	all, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestConsultationDelete_NoExiste(t *testing.T) {
	services := newFakeServiceRepo()
	uc := usecase.NewConsultationUseCase(newFakeConsultationRepo(services), services)

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
