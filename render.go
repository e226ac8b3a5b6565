package seolens

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/seolens/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// page collects the layout data shared by every HTML page. It consumes
// pending flash messages, so call it before writing the response.
func page(c echo.Context, title, active string) views.Page {
	return views.Page{
		Title:   title,
		Active:  active,
		CSRF:    csrfToken(c),
		Flashes: popFlashes(c),
	}
}
