package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIndex(t *testing.T) {
	renderer, err := NewRenderer("1.2.3")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, IndexTemplate))

	page := buf.String()
	assert.Contains(t, page, `action="/calculate"`)
	for _, field := range []string{`name="fc"`, `name="gain"`, `name="c1"`, `name="approx"`} {
		assert.Contains(t, page, field)
	}
	assert.Contains(t, page, "Active Filter Designer")
	assert.Contains(t, page, "v1.2.3")
}

func TestRenderUnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer("1.0.0")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Render(&buf, "missing.html")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestStaticHandler(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "stylesheet", path: "/style.css", wantCode: http.StatusOK},
		{name: "page script", path: "/script.js", wantCode: http.StatusOK},
		{name: "missing asset", path: "/nope.js", wantCode: http.StatusNotFound},
	}

	handler := StaticHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
