package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/response"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados de cadastro inválidos.", errs)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados de cadastro inválidos.")
		case ErrEmailTaken:
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "E-mail já cadastrado.")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao registrar usuário.")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Corpo da requisição inválido.")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "E-mail ou senha incorretos.")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao autenticar usuário.")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}
