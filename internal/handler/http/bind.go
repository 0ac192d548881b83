// internal/handler/http/bind.go
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"

	"reddit-browser/internal/client"
	"reddit-browser/internal/endpoint"
	"reddit-browser/internal/service"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// bindQuery decodes the query string into dst and validates it.
func bindQuery(c echo.Context, dst any) error {
	if err := schemaDecoder.Decode(dst, c.QueryParams()); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to decode query: %v", err))
	}
	return validateRequest(dst)
}

// bindBody decodes a JSON body into dst and validates it.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to decode body: %v", err))
	}
	return validateRequest(dst)
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, strings.ToLower(ve.Field())+": "+formatValidationError(ve))
	}
	return echo.NewHTTPError(http.StatusBadRequest, strings.Join(messages, "; "))
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "excludesall":
		return fmt.Sprintf("must not contain any of %q", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// serviceError maps a service error onto the HTTP status a caller should see.
func serviceError(err error) error {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, service.ErrInvalidLimit),
		errors.Is(err, client.ErrInvalidVote),
		errors.Is(err, endpoint.ErrUnknownKind),
		errors.Is(err, endpoint.ErrMissingArgument):
		status = http.StatusBadRequest
	case errors.Is(err, client.ErrUserContextRequired),
		errors.Is(err, client.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, client.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, client.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, client.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	return echo.NewHTTPError(status, err.Error()).SetInternal(err)
}
