package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gymclub/internal/auth"
	"gymclub/internal/errors"
)

// tokenMemberID extracts the member id bound to the bearer token that the
// JWT middleware stored on the context.
func tokenMemberID(c echo.Context) (uuid.UUID, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.MemberID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// requireTokenOwner rejects requests whose bearer token is bound to a
// different member than the path id. The token carries the member id, so a
// valid token for member A must not read or mutate member B.
func requireTokenOwner(c echo.Context, memberID uuid.UUID) *echo.HTTPError {
	tokenID, ok := tokenMemberID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "UNAUTHORIZED",
		})
	}
	if tokenID != memberID {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "token does not match requested member",
			Code:  "FORBIDDEN_MEMBER",
		})
	}
	return nil
}
