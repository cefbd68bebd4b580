package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/server/http/dto"
	"github.com/notemart/notemart/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentUserRole extracts authenticated user role from context.
func CurrentUserRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.RoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid id"))
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// respondError maps a domain error kind to an HTTP status and the uniform
// error envelope. Unknown errors never leak their text to the client.
func respondError(c *gin.Context, err error) {
	var domainErr *domainErrors.Error
	if !errors.As(err, &domainErr) {
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error"))
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Kind {
	case domainErrors.KindValidation, domainErrors.KindConflict, domainErrors.KindVerification:
		status = http.StatusBadRequest
	case domainErrors.KindAuthentication:
		status = http.StatusUnauthorized
	case domainErrors.KindForbidden:
		status = http.StatusForbidden
	case domainErrors.KindNotFound:
		status = http.StatusNotFound
	}

	c.JSON(status, dto.Fail(domainErr.Message))
}
