package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
	jwtsvc "github.com/bryerblack/projeto-principios-dev-web/internal/pkg/jwt"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/response"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth validates the Bearer token and stores the authenticated user's id and
// role on the context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Acesso negado. Token não fornecido.")
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token inválido.")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated user holds one of
// the given roles. Must run after Auth.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.Role(c.GetString(CtxRole))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Acesso restrito.")
		c.Abort()
	}
}
