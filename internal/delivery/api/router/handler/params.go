package handler

import (
	"strconv"
	"strings"

	domainerrors "academy/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrInvalidInput.WithDetails(name + " must be a positive integer")
	}

	return uint(id), nil
}

// queryBool reads a boolean query flag. Anything but true/1/yes is false.
func queryBool(c echo.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.QueryParam(name))) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// queryInt reads a non-negative integer query parameter, 0 when absent.
func queryInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domainerrors.ErrInvalidInput.WithDetails(name + " must be a non-negative integer")
	}

	return n, nil
}

// bindAndValidate decodes the body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
