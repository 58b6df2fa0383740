package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"video-gateway/domain/model"
	"video-gateway/domain/repository"
	"video-gateway/infrastructure/configuration"
	"video-gateway/infrastructure/logger"
)

// Auth verifies the Bearer token and resolves the principal against the user
// store. On success the handler chain sees "user_id" and "user_name".
func Auth(userRepository repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			abort(ctx, "Unauthorized")
			return
		}
		parts := strings.Split(authorization, "Bearer ")
		if len(parts) != 2 {
			abort(ctx, "Unauthorized")
			return
		}

		userClaims, token, err := getClaim(parts[1], configuration.C.App.SecretKey)
		if err != nil || !token.Valid {
			abort(ctx, tokenMessage(err))
			return
		}

		user, err := userRepository.GetByUserName(ctx.Request.Context(), userClaims.UserName)
		if err != nil {
			logger.GetLogger().WithField("userName", userClaims.UserName).Info("Token valid but user unknown")
			abort(ctx, "Unauthorized")
			return
		}

		ctx.Set("user_id", fmt.Sprintf("%d", user.ID))
		ctx.Set("user_name", user.UserName)
		ctx.Next()
	}
}

func abort(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

func tokenMessage(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			// Token is either expired or not active yet
			return "Timing is everything"
		}
	}
	return "Unauthorized"
}

func getClaim(raw, secretKey string) (model.UserClaims, *jwt.Token, error) {
	var userClaims model.UserClaims
	token, err := jwt.ParseWithClaims(
		raw,
		&userClaims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
	)
	return userClaims, token, err
}
