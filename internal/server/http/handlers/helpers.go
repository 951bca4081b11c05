package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	switch domainErrors.KindOf(err) {
	case domainErrors.KindValidation:
		if errors.Is(err, domainErrors.ErrTotalsMismatch) {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadRequest
	case domainErrors.KindNotFound:
		return http.StatusNotFound
	case domainErrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(StatusFor(err), dto.ErrorResponse{Code: domainErrors.CodeOf(err)})
}

func invalidInput(c *gin.Context) {
	writeError(c, domainErrors.ErrInvalidInput)
}

// pathID parses a positive identifier path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		invalidInput(c)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		invalidInput(c)
		return false
	}
	return true
}
