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

func TestServiceCreate_ActivoPorDefecto(t *testing.T) {
	uc := usecase.NewServiceUseCase(newFakeServiceRepo())

	out, err := uc.Create(context.Background(), dto.CreateServiceRequest{
		Name:     "Desarrollo Web",
		Category: entity.CategoryDesarrollo,
		Price:    decimal.NewFromInt(2500),
		Duration: "4 semanas",
	})
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.NotEmpty(t, out.ID)
}

func TestServiceCreate_CategoriaInvalida(t *testing.T) {
	uc := usecase.NewServiceUseCase(newFakeServiceRepo())

	_, err := uc.Create(context.Background(), dto.CreateServiceRequest{
		Name:     "Otro",
		Category: "marketing",
		Price:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewServiceUseCase(newFakeServiceRepo())

	_, err := uc.Create(context.Background(), dto.CreateServiceRequest{
		Name:     "Otro",
		Category: entity.CategoryCloud,
		Price:    decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceList_FiltraInactivos(t *testing.T) {
	repo := newFakeServiceRepo()
	uc := usecase.NewServiceUseCase(repo)
	seedService(t, repo, "activo", true)
	seedService(t, repo, "retirado", false)

	public, err := uc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "activo", public[0].Name)

	admin, err := uc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestServiceUpdate_Parcial(t *testing.T) {
	repo := newFakeServiceRepo()
	uc := usecase.NewServiceUseCase(repo)
	svc := seedService(t, repo, "web", true)

	price := decimal.NewFromInt(3000)
	inactive := false
	out, err := uc.Update(context.Background(), svc.ID, dto.UpdateServiceRequest{
		Price:  &price,
		Active: &inactive,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.Price.Equal(price))
	assert.False(t, out.Active)
	assert.Equal(t, "web", out.Name, "los campos omitidos no cambian")
}

func TestServiceUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewServiceUseCase(newFakeServiceRepo())

	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateServiceRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestServiceDelete(t *testing.T) {
	repo := newFakeServiceRepo()
	uc := usecase.NewServiceUseCase(repo)
	svc := seedService(t, repo, "web", true)

	require.NoError(t, uc.Delete(context.Background(), svc.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), svc.ID), domain.ErrNotFound)
}
