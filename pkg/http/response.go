package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes a success envelope.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// CreatedResponse writes a created envelope.
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

// ErrorResponse writes an error envelope with the given status.
func ErrorResponse(c echo.Context, statusCode int, detail interface{}) error {
	return c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   detail,
	})
}

// BadRequestResponse writes bad request error.
func BadRequestResponse(c echo.Context, detail interface{}) error {
	return ErrorResponse(c, http.StatusBadRequest, detail)
}

// UnauthorizedResponse writes unauthorized error.
func UnauthorizedResponse(c echo.Context, detail interface{}) error {
	return ErrorResponse(c, http.StatusUnauthorized, detail)
}

// ForbiddenResponse writes forbidden error.
func ForbiddenResponse(c echo.Context, detail interface{}) error {
	return ErrorResponse(c, http.StatusForbidden, detail)
}

// NotFoundResponse writes not found error.
func NotFoundResponse(c echo.Context, detail interface{}) error {
	return ErrorResponse(c, http.StatusNotFound, detail)
}

// ServiceUnavailableResponse writes service unavailable error.
func ServiceUnavailableResponse(c echo.Context, detail interface{}) error {
	return ErrorResponse(c, http.StatusServiceUnavailable, detail)
}

// InternalServerErrorResponse writes internal server error.
func InternalServerErrorResponse(c echo.Context, detail interface{}) error {
	return ErrorResponse(c, http.StatusInternalServerError, detail)
}

// AppErrorResponse writes application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c, err.Error())
}
