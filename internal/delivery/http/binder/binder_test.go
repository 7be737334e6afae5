package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeRequest struct {
	Code string `json:"code"`
}

func newJSONContext(t *testing.T, method, body string) echo.Context {
	t.Helper()

	e := echo.New()
	e.Binder = New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestBinder_Bind(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, `{"code":"DS-1700000000000-AB12CD"}`)

	var req codeRequest
	require.NoError(t, c.Bind(&req))
	assert.Equal(t, "DS-1700000000000-AB12CD", req.Code)
}

func TestBinder_Bind_RejectsUnknownFields(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, `{"code":"DS-1700000000000-AB12CD","bogus_field":"x"}`)

	var req codeRequest
	err := c.Bind(&req)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestBinder_Bind_EmptyBody(t *testing.T) {
	e := echo.New()
	e.Binder = New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var body codeRequest
	require.NoError(t, c.Bind(&body))
	assert.Empty(t, body.Code)
}
