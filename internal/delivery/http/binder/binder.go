// Package binder provides the request binder installed on the HTTP server.
package binder

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Binder decodes JSON request bodies strictly: a body carrying fields the
// target schema does not declare is rejected before any domain logic runs.
// Path and query parameters bind the way echo's default binder does.
type Binder struct {
	fallback echo.DefaultBinder
}

// New creates the strict binder.
func New() *Binder {
	return &Binder{}
}

// Bind implements echo.Binder.
func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.fallback.BindPathParams(c, i); err != nil {
		return err
	}

	method := c.Request().Method
	if method == http.MethodGet || method == http.MethodDelete || method == http.MethodHead {
		if err := b.fallback.BindQueryParams(c, i); err != nil {
			return err
		}
	}

	return b.bindBody(i, c)
}

func (b *Binder) bindBody(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return b.fallback.BindBody(c, i)
	}

	decoder := json.NewDecoder(req.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	return nil
}
