package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripchat/pkg/metrics"
	"tripchat/pkg/utils"
)

func newRouter(issuer *utils.SessionTokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(), CORSMiddleware())
	r.GET("/sessions/:sessionId", SessionAuthMiddleware(issuer), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("session_id"))
	})
	return r
}

func TestTraceIDMiddleware(t *testing.T) {
	r := newRouter(utils.NewSessionTokenIssuer("k", time.Hour))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodOptions, "/sessions/x", nil)
	req.Header.Set("X-Trace-ID", incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get("X-Trace-ID"))

	req = httptest.NewRequest(http.MethodOptions, "/sessions/x", nil)
	req.Header.Set("X-Trace-ID", "not a uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_, err := uuid.Parse(w.Header().Get("X-Trace-ID"))
	assert.NoError(t, err)
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(utils.NewSessionTokenIssuer("k", time.Hour))

	req := httptest.NewRequest(http.MethodOptions, "/sessions/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSessionAuthMiddleware(t *testing.T) {
	issuer := utils.NewSessionTokenIssuer("k", time.Hour)
	r := newRouter(issuer)
	token, err := issuer.CreateToken("abc")
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/sessions/abc", "", http.StatusUnauthorized},
		{"not bearer", "/sessions/abc", "Basic " + token, http.StatusUnauthorized},
		{"bad token", "/sessions/abc", "Bearer nope", http.StatusUnauthorized},
		{"other session", "/sessions/xyz", "Bearer " + token, http.StatusForbidden},
		{"ok", "/sessions/abc", "Bearer " + token, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusOK {
				assert.Equal(t, "abc", w.Body.String())
			}
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/probe/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	counter := metrics.RequestCount.WithLabelValues(http.MethodGet, "/probe/:id", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe/"+id, nil))
		require.Equal(t, http.StatusTeapot, w.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
