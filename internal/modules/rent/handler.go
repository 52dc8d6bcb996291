package rent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
	"github.com/bryerblack/projeto-principios-dev-web/internal/middleware"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects rg to already carry the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rents", h.Request)
	rg.POST("/rents/request", h.Request)
	rg.GET("/rents", middleware.RequireRoles(domain.RoleAdmin), h.GetAll)
	rg.GET("/rents/me", h.GetMine)
	rg.GET("/rents/:id", h.GetByID)
	rg.PUT("/rents/:id", h.Update)
	rg.DELETE("/rents/:id", h.Delete)
	rg.PUT("/rents/:id/approve", h.Review)
	rg.PUT("/rents/:id/cancel", h.Cancel)
	rg.PUT("/rents/:id/finalize", h.Finalize)
}

func actor(c *gin.Context) (string, domain.Role) {
	return c.GetString(middleware.CtxUserID), domain.Role(c.GetString(middleware.CtxRole))
}

func (h *Handler) Request(c *gin.Context) {
	var req CreateRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados de agendamento ausentes ou inválidos.")
		return
	}

	actorID, _ := actor(c)
	rt, err := h.service.Request(c.Request.Context(), actorID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rt)
}

func (h *Handler) Review(c *gin.Context) {
	var req ReviewRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	actorID, actorRole := actor(c)
	rt, err := h.service.Review(c.Request.Context(), c.Param("id"), actorID, actorRole, req.Status)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

func (h *Handler) Cancel(c *gin.Context) {
	actorID, actorRole := actor(c)

	rt, err := h.service.Cancel(c.Request.Context(), c.Param("id"), actorID, actorRole)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

func (h *Handler) Finalize(c *gin.Context) {
	actorID, actorRole := actor(c)

	rt, err := h.service.Finalize(c.Request.Context(), c.Param("id"), actorID, actorRole)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

func (h *Handler) GetAll(c *gin.Context) {
	rents, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(rents) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, rents)
}

func (h *Handler) GetMine(c *gin.Context) {
	actorID, _ := actor(c)

	rents, err := h.service.GetMine(c.Request.Context(), actorID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(rents) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, rents)
}

func (h *Handler) GetByID(c *gin.Context) {
	rt, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	_, actorRole := actor(c)
	rt, err := h.service.Update(c.Request.Context(), actorRole, c.Param("id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

func (h *Handler) Delete(c *gin.Context) {
	_, actorRole := actor(c)

	if err := h.service.Delete(c.Request.Context(), actorRole, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Locação deletada com sucesso.")
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Locação não encontrada.")
	case ErrPlaceNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Espaço não encontrado.")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados de agendamento ausentes ou inválidos.")
	case ErrOwnPlace:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Você não pode alugar o seu próprio espaço.")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Você não tem permissão para esta operação.")
	case ErrInvalidStatus:
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status inválido.")
	case ErrInvalidStatusTransition:
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Transição de status não permitida.")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno.")
	}
}
