package place

import (
	"net/http"
	"strconv"

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
	rg.POST("/places", h.Create)
	rg.GET("/places", h.GetAll)
	rg.GET("/places/own", h.GetOwn)
	rg.GET("/places/available", h.GetAvailable)
	rg.GET("/places/:id", h.GetByID)
	rg.PUT("/places/:id", h.Update)
	rg.DELETE("/places/:id", h.Delete)
	rg.GET("/places/:id/equipments", h.GetEquipments)
	rg.POST("/places/:id/equipments", h.AddEquipment)
	rg.DELETE("/places/:id/equipments/:equipmentId", h.RemoveEquipment)
}

func actor(c *gin.Context) (string, domain.Role) {
	return c.GetString(middleware.CtxUserID), domain.Role(c.GetString(middleware.CtxRole))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	actorID, _ := actor(c)
	p, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) GetAll(c *gin.Context) {
	places, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(places) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, places)
}

func (h *Handler) GetOwn(c *gin.Context) {
	actorID, _ := actor(c)

	places, err := h.service.GetByOwner(c.Request.Context(), actorID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(places) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, places)
}

func (h *Handler) GetAvailable(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Parâmetro 'page' inválido.")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Parâmetro 'limit' inválido.")
		return
	}

	result, err := h.service.GetAvailable(c.Request.Context(), page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	actorID, actorRole := actor(c)
	p, err := h.service.Update(c.Request.Context(), actorID, actorRole, c.Param("id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	actorID, actorRole := actor(c)

	if err := h.service.Delete(c.Request.Context(), actorID, actorRole, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Espaço deletado com sucesso.")
}

func (h *Handler) GetEquipments(c *gin.Context) {
	equipments, err := h.service.GetEquipments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(equipments) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, equipments)
}

func (h *Handler) AddEquipment(c *gin.Context) {
	var req AddEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	actorID, actorRole := actor(c)
	equipment, err := h.service.AddEquipment(c.Request.Context(), actorID, actorRole, c.Param("id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, equipment)
}

func (h *Handler) RemoveEquipment(c *gin.Context) {
	actorID, actorRole := actor(c)

	err := h.service.RemoveEquipment(c.Request.Context(), actorID, actorRole, c.Param("id"), c.Param("equipmentId"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Equipamento removido com sucesso.")
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Espaço não encontrado.")
	case ErrAddressTaken:
		response.Error(c, http.StatusConflict, "ADDRESS_TAKEN", "Endereço já cadastrado.")
	case ErrActiveRents:
		response.Error(c, http.StatusConflict, "ACTIVE_RENTS", "O espaço possui locações ativas.")
	case ErrEquipmentTaken:
		response.Error(c, http.StatusConflict, "EQUIPMENT_TAKEN", "Equipamento já cadastrado para este espaço.")
	case ErrEquipmentNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipamento não encontrado.")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados inválidos.")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Você não tem permissão para esta operação.")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno.")
	}
}
