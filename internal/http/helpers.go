// README: HTTP helper utilities for JSON and error mapping.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"frostdesk/internal/modules/customer"
	"frostdesk/internal/modules/scheduling"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customer.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, scheduling.ErrBadDate):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrPastDate):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
