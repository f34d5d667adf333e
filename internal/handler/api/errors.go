package api

import (
	"net/http"
	"strconv"

	"ootd-commerce/internal/handler/httperr"
	"ootd-commerce/internal/handler/middleware"
	"ootd-commerce/internal/pkg/errs"
	"ootd-commerce/internal/usecase/commands"
	"ootd-commerce/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const internalErrorMessage = "Internal server error"

var (
	errUnauthenticated = errs.New("user not authenticated")
	errMissingIdentity = errs.New("user_id missing from request context")
)

type errorMapping struct {
	kind    error
	status  int
	message string
	// useOwn lets a domain sentinel replace message with its own text
	useOwn bool
}

// ordered: the first matching kind wins
var errorMappings = []errorMapping{
	{kind: commands.ErrInvalidCredentials, status: http.StatusUnauthorized, message: "Invalid email or password"},
	{kind: commands.ErrAuthenticationFailed, status: http.StatusUnauthorized, message: "Invalid email or password"},
	{kind: commands.ErrTokenValidation, status: http.StatusUnauthorized, message: "Invalid or expired refresh token"},
	{kind: commands.ErrUserInactive, status: http.StatusForbidden, message: "Account is inactive"},
	{kind: queries.ErrUserInactive, status: http.StatusForbidden, message: "Account is inactive"},
	{kind: errs.ErrNotFound, status: http.StatusNotFound, message: "Not found", useOwn: true},
	{kind: errs.ErrBadRequest, status: http.StatusBadRequest, message: "Invalid request", useOwn: true},
	{kind: errs.ErrInsufficientStock, status: http.StatusConflict, message: "Insufficient stock", useOwn: true},
	{kind: errs.ErrInsufficientBalance, status: http.StatusConflict, message: "Insufficient coupon balance", useOwn: true},
	{kind: errs.ErrConflict, status: http.StatusConflict, message: "Conflict", useOwn: true},
	{kind: errs.ErrCouponNotUsable, status: http.StatusUnprocessableEntity, message: "Coupon cannot be used", useOwn: true},
	{kind: errs.ErrForbidden, status: http.StatusForbidden, message: "Forbidden", useOwn: true},
}

// respondError maps err onto the error taxonomy and aborts the request.
// Domain sentinels surface their own message; anything wrapped around
// infrastructure errors gets the generic message of its kind.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errs.Is(err, m.kind) {
			continue
		}
		msg := m.message
		if m.useOwn {
			if cause := errs.Cause(err); cause != nil && cause.Error() == err.Error() {
				msg = err.Error()
			}
		}
		httperr.AbortWithError(c, m.status, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, internalErrorMessage, nil)
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func requireActor(c *gin.Context) (commands.Actor, bool) {
	userID, ok := requireUserID(c)
	if !ok {
		return commands.Actor{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return commands.Actor{ID: userID, Role: role}, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt falls back to def when the parameter is absent or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	iv, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return iv
}

func queryCursor(c *gin.Context) *string {
	if after := c.Query("after"); after != "" {
		return &after
	}
	return nil
}
