package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shoply_back_end/internal/store"
	"shoply_back_end/internal/utils"
)

// AuthRequired protège une route : extrait le Bearer token, vérifie sa
// signature et son expiration, puis résout l'utilisateur et le place
// dans le contexte Gin.
//
// 401 si le token est absent, 403 s'il est invalide ou expiré. Un token
// valide dont l'utilisateur a été supprimé entre-temps laisse passer la
// requête avec user_id seul dans le contexte — comportement assumé, le
// handler aval répond selon son propre contrat.
func AuthRequired(secret string, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			c.Abort()
			return
		}

		userID, err := utils.ParseUserID(secret, parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)

		if user, err := users.FindByID(c.Request.Context(), userID); err == nil {
			c.Set("user", user)
		}

		c.Next()
	}
}
