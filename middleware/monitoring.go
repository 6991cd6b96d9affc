package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bobrandy13/LeetcodeBot/internal/metrics"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	authRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_rejections_total",
			Help: "Total number of unauthorized requests",
		},
		[]string{"reason"},
	)
)

// InitPrometheus registers the HTTP and domain metrics. Call once from main.
func InitPrometheus() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(authRejections)
	metrics.Register()
}

// MonitorMiddleware records request counts and latency per route template.
func MonitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{w, http.StatusOK}

		next.ServeHTTP(ww, r)

		path := routeTemplate(r)
		httpRequestsTotal.WithLabelValues(path, r.Method, strconv.Itoa(ww.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())

		if ww.statusCode == http.StatusUnauthorized {
			authRejections.WithLabelValues("401_unauthorized").Inc()
		} else if ww.statusCode == http.StatusForbidden {
			authRejections.WithLabelValues("403_forbidden").Inc()
		}
	})
}

// BasicAuthMiddleware protects /metrics. An empty user disables the route.
func BasicAuthMiddleware(metricsUser, metricsPass string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()

			if metricsUser == "" || !ok ||
				subtle.ConstantTimeCompare([]byte(user), []byte(metricsUser)) != 1 ||
				subtle.ConstantTimeCompare([]byte(pass), []byte(metricsPass)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="Metrics"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
