package middleware

import (
	"net/http"
	"strings"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/infrastructure/auth"
	"loteamentos_api/pkg"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

var (
	errNaoAutenticado = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Token ausente ou inválido", http.StatusUnauthorized)
	errEscopoNegado   = pkg.NewDomainErrorSimple("UNAUTH_SCOPE", "Escopo não autorizado", http.StatusForbidden)
)

// Autenticar validates the Bearer token and stores the claims in the
// request context.
func Autenticar() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errNaoAutenticado.HTTPStatus, errNaoAutenticado.ToHTTPError())
			return
		}

		claims, err := auth.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errNaoAutenticado.HTTPStatus, errNaoAutenticado.ToHTTPError())
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ExigirScope rejects requests whose token does not grant the scope.
func ExigirScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsDe(c)
		if claims == nil || !auth.HasScope(claims, scope) {
			c.AbortWithStatusJSON(errEscopoNegado.HTTPStatus, errEscopoNegado.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ClaimsDe returns the claims stored by Autenticar, or nil.
func ClaimsDe(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// Ator returns the authenticated usuario as the audit snapshot.
func Ator(c *gin.Context) entities.UsuarioResumo {
	claims := ClaimsDe(c)
	if claims == nil {
		return entities.UsuarioResumo{}
	}
	return entities.UsuarioResumo{ID: claims.UsuarioID, Nome: claims.Nome, Documento: claims.Documento}
}
