package rating

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

// RegisterRoutes expects rg to already carry the auth middleware. POST
// /ratings targets a place; POST /ratings/user targets a user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ratings", h.CreatePlaceRating)
	rg.POST("/ratings/user", h.CreateUserRating)
	rg.GET("/ratings", h.GetAll)
	rg.GET("/ratings/:id", h.GetByID)
	rg.GET("/ratings/user/:reviewerId", h.GetByReviewer)
	rg.GET("/ratings/reviewed/:reviewedId", h.GetByReviewed)
	rg.DELETE("/ratings/:id", h.Delete)
	rg.PUT("/ratings/average/user/:userId", middleware.RequireRoles(domain.RoleAdmin), h.RecalcUserAverage)
	rg.PUT("/ratings/average/place/:placeId", middleware.RequireRoles(domain.RoleAdmin), h.RecalcPlaceAverage)
}

// RecalcUserAverage recomputes a user's stored average from scratch. Meant
// as a maintenance hook; regular writes keep averages current on their own.
func (h *Handler) RecalcUserAverage(c *gin.Context) {
	if err := h.service.UpdateUserAverageRating(c.Request.Context(), c.Param("userId")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Média recalculada com sucesso.")
}

func (h *Handler) RecalcPlaceAverage(c *gin.Context) {
	if err := h.service.UpdatePlaceAverageRating(c.Request.Context(), c.Param("placeId")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Média recalculada com sucesso.")
}

func (h *Handler) CreatePlaceRating(c *gin.Context) {
	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	reviewerID := c.GetString(middleware.CtxUserID)
	rt, err := h.service.CreatePlaceRating(c.Request.Context(), reviewerID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rt)
}

func (h *Handler) CreateUserRating(c *gin.Context) {
	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	reviewerID := c.GetString(middleware.CtxUserID)
	rt, err := h.service.CreateUserRating(c.Request.Context(), reviewerID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rt)
}

func (h *Handler) GetAll(c *gin.Context) {
	ratings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(ratings) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, ratings)
}

func (h *Handler) GetByID(c *gin.Context) {
	rt, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

func (h *Handler) GetByReviewer(c *gin.Context) {
	ratings, err := h.service.GetByReviewer(c.Request.Context(), c.Param("reviewerId"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(ratings) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, ratings)
}

func (h *Handler) GetByReviewed(c *gin.Context) {
	ratings, err := h.service.GetByReviewed(c.Request.Context(), c.Param("reviewedId"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(ratings) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, ratings)
}

func (h *Handler) Delete(c *gin.Context) {
	actorRole := domain.Role(c.GetString(middleware.CtxRole))

	if err := h.service.Delete(c.Request.Context(), actorRole, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Avaliação deletada com sucesso.")
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Avaliação não encontrada.")
	case ErrUserNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado.")
	case ErrPlaceNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Espaço não encontrado.")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A nota deve estar entre 0 e 5.")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Você não tem permissão para esta operação.")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno.")
	}
}
