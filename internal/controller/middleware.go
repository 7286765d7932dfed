package controller

import (
	"net/http"
	"strings"

	"echoprep/internal/dto"
	"echoprep/internal/service"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// RequireAuth validates the bearer token and stores the user id in the
// request context for downstream handlers.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		userID, err := authService.ParseToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// currentUserID reads the authenticated user id set by RequireAuth.
func currentUserID(ctx *gin.Context) uint {
	if v, exists := ctx.Get(userIDKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
