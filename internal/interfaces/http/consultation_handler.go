package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consultoria-api/internal/application/dto"
	"github.com/jhoicas/consultoria-api/internal/application/usecase"
	"github.com/jhoicas/consultoria-api/internal/domain"
)

// ConsultationHandler maneja el libro de consultas. Crear y my-consultations
// requieren autenticación; el resto es solo admin (vía router).
type ConsultationHandler struct {
	uc *usecase.ConsultationUseCase
}

// NewConsultationHandler construye el handler.
func NewConsultationHandler(uc *usecase.ConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear consulta
// @Tags         consultations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsultationRequest  true  "service_id, description, budget?, deadline?"
// @Success      201   {object}  dto.ConsultationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consultations [post]
func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConsultationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ServiceID == "" || in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "service_id y description son requeridos"})
	}
	// El dueño es siempre el subject del token, nunca el body.
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "presupuesto o fecha límite inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al crear consulta"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Listar consultas del usuario autenticado
// @Tags         consultations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConsultationResponse
// @Router       /api/consultations/my-consultations [get]
func (h *ConsultationHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener consultas"})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todas las consultas
// @Tags         consultations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConsultationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/consultations [get]
func (h *ConsultationHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener consultas"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estado/notas de una consulta
// @Tags         consultations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la consulta"
// @Param        body  body  dto.UpdateConsultationRequest  true  "status?, notes?"
// @Success      200   {object}  dto.ConsultationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consultations/{id} [put]
func (h *ConsultationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConsultationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		}
		if errors.Is(err, domain.ErrInvalidTransition) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "transición de estado no permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al actualizar consulta"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar consulta
// @Tags         consultations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la consulta"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultations/{id} [delete]
func (h *ConsultationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consulta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al eliminar consulta"})
	}
	return c.JSON(fiber.Map{"message": "consulta eliminada correctamente"})
}
