package user

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
	rg.GET("/users", middleware.RequireRoles(domain.RoleAdmin), h.GetAll)
	rg.GET("/users/me", h.Me)
	rg.GET("/users/:id", h.GetByID)
	rg.PUT("/users/:id", h.Update)
	rg.PUT("/users/:id/password", h.ChangePassword)
	rg.DELETE("/users/:id", h.Delete)
}

func actor(c *gin.Context) (string, domain.Role) {
	return c.GetString(middleware.CtxUserID), domain.Role(c.GetString(middleware.CtxRole))
}

func (h *Handler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao obter usuários.")
		return
	}
	if len(users) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) Me(c *gin.Context) {
	actorID, _ := actor(c)

	u, err := h.service.GetByID(c.Request.Context(), actorID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) GetByID(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	actorID, actorRole := actor(c)
	u, err := h.service.Update(c.Request.Context(), actorID, actorRole, c.Param("id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	actorID, actorRole := actor(c)
	if err := h.service.ChangePassword(c.Request.Context(), actorID, actorRole, c.Param("id"), req); err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Senha atualizada com sucesso.")
}

func (h *Handler) Delete(c *gin.Context) {
	actorID, actorRole := actor(c)

	if err := h.service.Delete(c.Request.Context(), actorID, actorRole, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Usuário deletado com sucesso.")
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado.")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Você não tem permissão para esta operação.")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados inválidos.")
	case ErrEmailTaken:
		response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "E-mail já cadastrado.")
	case ErrInvalidPassword:
		response.Error(c, http.StatusUnauthorized, "INVALID_PASSWORD", "Senha atual incorreta.")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno.")
	}
}
