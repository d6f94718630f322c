package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	router := newTestRouter(t, &MockDesignService{})
	values := url.Values{
		"fc":     {"abc"},
		"gain":   {"10"},
		"c1":     {"1e-8"},
		"approx": {"Butterworth"},
	}
	rec := submitForm(router, values)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		if line["message"] == "HTTP request" {
			entry = line
		}
	}
	require.NotNil(t, entry, "no access log line written")

	assert.Equal(t, http.MethodPost, entry["method"])
	assert.Equal(t, "/calculate", entry["path"])
	assert.Equal(t, "/calculate", entry["route"])
	assert.Equal(t, float64(len(values.Encode())), entry["content_length"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(len("Error: Please enter valid numbers.")), entry["bytes"])
	assert.NotEmpty(t, entry["requestID"])
}
