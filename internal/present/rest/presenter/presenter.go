package presenter

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

func BadRequest(c echo.Context, err error) error {
	slog.Warn("bad request", "error", err)
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func InternalError(c echo.Context, err error) error {
	slog.Error("internal error", "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
