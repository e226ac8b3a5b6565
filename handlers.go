package seolens

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/seolens/views"
)

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleAnalyze(c echo.Context) error {
	if !a.limiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{Message: "Too many requests, please try again in a minute"})
	}

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}
	req.URL = strings.TrimSpace(req.URL)
	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: ve.Message, Field: ve.Field})
		}
		return err
	}

	report, err := a.analyze(c.Request().Context(), req.URL)
	if err != nil {
		c.Logger().Warnf("analyze %s: %v", req.URL, err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Could not access URL: " + err.Error()})
	}
	return c.JSON(http.StatusOK, NewAnalyzeResponse(req.URL, report))
}

func (a *App) handleHistoryList(c echo.Context) error {
	items, err := a.Cache.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list history: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch history"})
	}
	return c.JSON(http.StatusOK, items)
}

func (a *App) handleHistoryClear(c echo.Context) error {
	if err := a.History.Clear(c.Request().Context()); err != nil {
		c.Logger().Errorf("clear history: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to clear history"})
	}
	a.Cache.Invalidate()
	return c.NoContent(http.StatusNoContent)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < 500 {
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		_ = c.JSON(code, ErrorResponse{Message: message})
		return
	}
	switch {
	case code == http.StatusNotFound:
		_ = RenderStatus(c, code, views.NotFound())
	case code >= 500:
		_ = RenderStatus(c, code, views.ServerError())
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
