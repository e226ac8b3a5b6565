package seolens

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/seolens/views"
)

// recentOnHome is how many history entries the home page lists.
const recentOnHome = 5

func (a *App) handleHome(c echo.Context) error {
	return a.renderHome(c, http.StatusOK, "", "")
}

func (a *App) renderHome(c echo.Context, code int, url, errMsg string) error {
	recent, err := a.Cache.List(c.Request().Context())
	if err != nil {
		c.Logger().Warnf("list history: %v", err)
		recent = nil
	}
	if len(recent) > recentOnHome {
		recent = recent[:recentOnHome]
	}
	return RenderStatus(c, code, views.Home(views.HomeData{
		Page:   page(c, "SEO Lens", "home"),
		URL:    url,
		Error:  errMsg,
		Recent: recent,
	}))
}

func (a *App) handleReport(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("url"))
	if raw == "" {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if !a.limiter.Allow(c.RealIP()) {
		return a.renderHome(c, http.StatusTooManyRequests, raw, "Too many requests, please try again in a minute")
	}

	req := AnalyzeRequest{URL: NormalizeURL(raw)}
	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return a.renderHome(c, http.StatusBadRequest, raw, ve.Message)
		}
		return err
	}

	report, err := a.analyze(c.Request().Context(), req.URL)
	if err != nil {
		c.Logger().Warnf("analyze %s: %v", req.URL, err)
		return a.renderHome(c, http.StatusBadRequest, raw, "Could not access URL: "+err.Error())
	}

	title := "Report for " + req.URL
	return Render(c, views.Report(views.NewReportData(page(c, title, "report"), req.URL, report)))
}

func (a *App) handleHistoryPage(c echo.Context) error {
	items, err := a.Cache.List(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, views.History(views.HistoryData{
		Page:  page(c, "History", "history"),
		Items: items,
	}))
}

func (a *App) handleHistoryClearForm(c echo.Context) error {
	if err := a.History.Clear(c.Request().Context()); err != nil {
		return err
	}
	a.Cache.Invalidate()
	if err := addFlash(c, "History cleared"); err != nil {
		c.Logger().Warnf("add flash: %v", err)
	}
	return c.Redirect(http.StatusSeeOther, "/history")
}
