// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/middleware"
)

// PeriodResolver reads the month and year query parameters of a request.
type PeriodResolver struct {
	clock    adapter.Clock
	location *time.Location
}

// NewPeriodResolver creates a resolver that defaults to the current month in loc.
func NewPeriodResolver(clock adapter.Clock, loc *time.Location) *PeriodResolver {
	if loc == nil {
		loc = time.UTC
	}
	return &PeriodResolver{
		clock:    clock,
		location: loc,
	}
}

// FromQuery returns the period named by ?month=&year=. A missing parameter takes its
// value from the current month. Unparseable values yield an invalid period that the
// use cases reject with their own error code.
func (r *PeriodResolver) FromQuery(ctx *gin.Context) entity.Period {
	current := entity.PeriodOf(r.clock.Now().In(r.location))
	return entity.NewPeriod(
		queryInt(ctx, "month", current.Month),
		queryInt(ctx, "year", current.Year),
	)
}

func queryInt(ctx *gin.Context, key string, fallback int) int {
	raw, ok := ctx.GetQuery(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// requireUser returns the authenticated user or answers 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id path parameter or answers 400.
func pathID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// optionalID parses an optional id from a request body.
func optionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func internalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
