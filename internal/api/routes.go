package api

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var localhostPattern = regexp.MustCompile(`^(localhost|127\.0\.0\.1):\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	cleanedRequest := cleanOrigin(origin)

	if localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

// setCorsHeaders writes the CORS headers. An empty allowOrigin leaves
// Access-Control-Allow-Origin unset, so browsers block the response.
func setCorsHeaders(w http.ResponseWriter, allowOrigin string) {
	w.Header().Set("Vary", "Origin")
	if allowOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
	}
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")
}

func handleCors(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCorsHeaders(w, r.Header.Get("Origin"))
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func (app *Application) withOriginCheck(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins) {
			handleCors(h).ServeHTTP(w, r)
			return
		}

		app.Logger.Info("origin rejected", zap.String("origin", cleanOrigin(origin)))
		setCorsHeaders(w, "")
		app.originNotAllowed(w, r, cleanOrigin(origin))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (app *Application) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		app.Logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

func zapError(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}
}

func (app *Application) BuildRoutes() http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(app.routeNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(app.methodNotAllowed)

	router.HandleFunc("/healthz", app.health).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/modes", app.listModes).Methods(http.MethodGet)
	v1.HandleFunc("/palettes", app.generatePalette).Methods(http.MethodGet)
	v1.HandleFunc("/palettes/random", app.randomPalette).Methods(http.MethodGet)
	v1.HandleFunc("/palettes/export", app.exportPalette).Methods(http.MethodGet)
	v1.HandleFunc("/contrast", app.contrast).Methods(http.MethodGet)
	v1.HandleFunc("/saved", app.listSaved).Methods(http.MethodGet)
	v1.HandleFunc("/saved", app.savePalette).Methods(http.MethodPost)
	v1.HandleFunc("/saved/{ref}", app.getSaved).Methods(http.MethodGet)
	v1.HandleFunc("/saved/{ref}", app.removeSaved).Methods(http.MethodDelete)

	return app.withOriginCheck(app.logRequests(router))
}
