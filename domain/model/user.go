package model

import "github.com/golang-jwt/jwt"

// User is the minimal principal the gateway knows about. Token issuance and
// password handling live in the external identity service.
type User struct {
	ID       int64  `json:"id"`
	UserName string `json:"user_name"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// UserClaims are the JWT claims the identity service signs.
type UserClaims struct {
	UserName string `json:"user_name"`
	jwt.StandardClaims
}
