package api

import (
	jwtservice "github.com/limbo/ramadan/pkg/jwt_service"
)

type JWTServiceI interface {
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}
