package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		app.Logger.Warn("could not write response body")
	}
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) paletteNotFound(w http.ResponseWriter, r *http.Request, err error) {
	app.writeJSON(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Palette Not Found",
		Description:      err.Error(),
		PossibleSolution: "List saved palettes with GET /v1/saved and use an id or name from there",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) paletteAlreadySaved(w http.ResponseWriter, r *http.Request, err error) {
	app.writeJSON(w, http.StatusConflict, HandlerError{
		ErrorName:        "Palette Exists",
		Description:      err.Error(),
		PossibleSolution: "Choose another name or remove the existing palette first",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) originNotAllowed(w http.ResponseWriter, r *http.Request, origin string) {
	app.writeJSON(w, http.StatusForbidden, HandlerError{
		ErrorName:        "Origin Not Allowed",
		Description:      "origin not allowed: " + origin,
		PossibleSolution: "Add the origin to server.allowedOrigins",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Method Not Allowed",
		Description:      fmt.Sprintf("%s is not supported on %s", r.Method, r.URL.Path),
		PossibleSolution: "Check the API routes for the supported methods",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) routeNotFound(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusNotFound, HandlerError{
		ErrorName:        "Not Found",
		Description:      "no route for " + r.URL.Path,
		PossibleSolution: "Check the request path",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Error("request failed", zapError(r, err)...)
	app.writeJSON(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}
