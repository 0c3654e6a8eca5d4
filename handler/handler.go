package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/model"
	"github.com/sgc-amambai/contracts/pkg/logger"
	"github.com/sgc-amambai/contracts/service"
)

// referenceDate returns the date statuses are computed against: the "today"
// query parameter when given, otherwise the clock's current date.
func referenceDate(c *gin.Context, today func() date.Date) (date.Date, error) {
	s := c.Query("today")
	if s == "" {
		return today(), nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: today: %v", model.ErrInvalidInput, err)
	}
	return d, nil
}

// respondError maps engine and store errors to HTTP responses
func respondError(c *gin.Context, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Contract is invalid", "fields": ve.Fields, "contract_id": ve.ContractID})
	case errors.Is(err, model.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrContractNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
	case errors.Is(err, service.ErrStoreFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(c.Request.Context(), "request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
