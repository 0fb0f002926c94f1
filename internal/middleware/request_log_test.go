package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"pet-adoption/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	level  string
	msg    string
	fields map[string]any
}

type captureLogger struct {
	mu      sync.Mutex
	entries []entry
}

func (c *captureLogger) With(map[string]any) logger.Logger { return c }

func (c *captureLogger) add(level, msg string, fields map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{level: level, msg: msg, fields: fields})
}

func (c *captureLogger) Debug(msg string, f map[string]any) { c.add("debug", msg, f) }
func (c *captureLogger) Info(msg string, f map[string]any)  { c.add("info", msg, f) }
func (c *captureLogger) Warn(msg string, f map[string]any)  { c.add("warn", msg, f) }
func (c *captureLogger) Error(msg string, f map[string]any) { c.add("error", msg, f) }

func TestRequestLogger_LevelByStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{0, "info"},
		{http.StatusCreated, "info"},
		{http.StatusConflict, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		log := &captureLogger{}
		h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if tc.status != 0 {
				w.WriteHeader(tc.status)
			}
			_, _ = w.Write([]byte("ok"))
		})))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/intake/forms", nil))

		require.Len(t, log.entries, 1)
		e := log.entries[0]
		assert.Equal(t, tc.level, e.level, "status %d", tc.status)
		assert.Equal(t, "http request", e.msg)
		assert.Equal(t, http.MethodPost, e.fields["method"])
		assert.Equal(t, "/intake/forms", e.fields["path"])
		assert.Equal(t, 2, e.fields["bytes"])
		assert.NotEmpty(t, e.fields["request_id"])
		if tc.status == 0 {
			assert.Equal(t, http.StatusOK, e.fields["status"])
		} else {
			assert.Equal(t, tc.status, e.fields["status"])
		}
	}
}

func TestRequestLogger_NilLogger(t *testing.T) {
	h := RequestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
