package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// respond writes a successful {"data": ...} envelope.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// respondError maps err to its HTTP status and writes {"error": ...}.
// Client errors are logged at warn, everything else at error.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": apperrors.Message(err)})
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// pathUUID parses a required UUID path parameter.
func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	return parseUUID(name, c.Param(name))
}

// parseUUID accepts any of the textual forms uuid.Parse does, in either case.
func parseUUID(name, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a valid UUID", name))
	}
	return id, nil
}

// queryPtr returns nil when the query parameter is absent and a pointer to its value otherwise.
func queryPtr(c *gin.Context, name string) *string {
	v, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	return &v
}

func queryUUIDPtr(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := queryPtr(c, name)
	if raw == nil {
		return nil, nil
	}
	id, err := parseUUID(name, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func requiredQuery(c *gin.Context, name string) (string, error) {
	v := c.Query(name)
	if v == "" {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s is required", name))
	}
	return v, nil
}

func requiredDecimal(raw *string, name string) (decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return decimal.Zero, apperrors.NewValidationError(fmt.Sprintf("%s is required", name))
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", name))
	}
	return d, nil
}
