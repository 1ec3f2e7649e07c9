package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"wcagpal/internal/buildinfo"
	"wcagpal/internal/color"
	"wcagpal/internal/export"
	"wcagpal/internal/manager"
	"wcagpal/internal/palette"
	"wcagpal/internal/types"
)

type modeResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type randomResponse struct {
	export.Document
	Seed uint64 `json:"seed"`
}

type contrastResponse struct {
	Foreground    string  `json:"foreground"`
	Background    string  `json:"background"`
	ContrastRatio float64 `json:"contrastRatio"`
	Tier          string  `json:"tier"`
	PassesAA      bool    `json:"passesAA"`
	PassesAAA     bool    `json:"passesAAA"`
}

type saveRequest struct {
	Base string `json:"base"`
	Mode string `json:"mode"`
	Name string `json:"name"`
}

type savedResponse struct {
	types.PaletteRecord
	Stale bool `json:"stale"`
}

// GET /healthz
func (app *Application) health(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.GetVersionOnly(),
	})
}

// GET /v1/modes
func (app *Application) listModes(w http.ResponseWriter, r *http.Request) {
	modes := make([]modeResponse, 0, len(palette.Modes()))
	for _, m := range palette.Modes() {
		modes = append(modes, modeResponse{Name: string(m), DisplayName: m.DisplayName()})
	}
	app.writeJSON(w, http.StatusOK, modes)
}

func (app *Application) modeParam(r *http.Request) (palette.HarmonyMode, error) {
	raw := r.URL.Query().Get("mode")
	if raw == "" {
		return app.Config.DefaultMode, nil
	}
	return palette.ParseHarmonyMode(raw)
}

// baseParam is permissive: a malformed base yields a black palette.
func baseParam(r *http.Request) (color.Color, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("base"))
	if raw == "" {
		return color.Color{}, errors.New("base query parameter is required")
	}
	return color.FromHex(raw), nil
}

func (app *Application) documentFromQuery(r *http.Request) (export.Document, error) {
	base, err := baseParam(r)
	if err != nil {
		return export.Document{}, err
	}
	mode, err := app.modeParam(r)
	if err != nil {
		return export.Document{}, err
	}
	return export.NewDocument(base, mode, palette.Generate(base, mode), app.Now()), nil
}

// GET /v1/palettes?base=&mode=
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	doc, err := app.documentFromQuery(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, doc)
}

// GET /v1/palettes/random?mode=&seed=
func (app *Application) randomPalette(w http.ResponseWriter, r *http.Request) {
	mode, err := app.modeParam(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	seed := rand.Uint64()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			app.badRequest(w, r, fmt.Errorf("seed must be a non-negative integer: %w", err))
			return
		}
	}

	base, combos := palette.GenerateRandom(palette.SeededRand(seed), mode)
	app.writeJSON(w, http.StatusOK, randomResponse{
		Document: export.NewDocument(base, mode, combos, app.Now()),
		Seed:     seed,
	})
}

var contentTypes = map[export.Format]string{
	export.FormatText: "text/plain; charset=utf-8",
	export.FormatJSON: "application/json",
	export.FormatYAML: "application/yaml",
	export.FormatHTML: "text/html; charset=utf-8",
	export.FormatPNG:  "image/png",
}

// GET /v1/palettes/export?base=&mode=&format=
func (app *Application) exportPalette(w http.ResponseWriter, r *http.Request) {
	format := export.FormatText
	if raw := r.URL.Query().Get("format"); raw != "" {
		parsed, err := export.ParseFormat(raw)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		format = parsed
	}

	doc, err := app.documentFromQuery(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(doc, format)))
	if err := export.Write(w, format, doc); err != nil {
		app.Logger.Error("export failed", zapError(r, err)...)
	}
}

// GET /v1/contrast?fg=&bg=
func (app *Application) contrast(w http.ResponseWriter, r *http.Request) {
	fg, err := color.ParseHex(r.URL.Query().Get("fg"))
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("fg: %w", err))
		return
	}
	bg, err := color.ParseHex(r.URL.Query().Get("bg"))
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("bg: %w", err))
		return
	}

	ratio := color.ContrastRatio(fg, bg)
	app.writeJSON(w, http.StatusOK, contrastResponse{
		Foreground:    fg.Hex(),
		Background:    bg.Hex(),
		ContrastRatio: export.RoundRatio(ratio),
		Tier:          string(palette.TierFor(ratio)),
		PassesAA:      ratio >= palette.AAThreshold,
		PassesAAA:     ratio >= palette.AAAThreshold,
	})
}

// GET /v1/saved
func (app *Application) listSaved(w http.ResponseWriter, r *http.Request) {
	records, err := app.Palettes.GetAllPalettes(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if records == nil {
		records = []types.PaletteRecord{}
	}
	app.writeJSON(w, http.StatusOK, records)
}

// POST /v1/saved
func (app *Application) savePalette(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	base, err := color.ParseHex(req.Base)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	mode := app.Config.DefaultMode
	if req.Mode != "" {
		mode, err = palette.ParseHarmonyMode(req.Mode)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
	}

	record, err := app.Palettes.SavePalette(r.Context(), req.Name, base, mode, palette.Generate(base, mode))
	if errors.Is(err, manager.ErrPaletteAlreadySaved) {
		app.paletteAlreadySaved(w, r, err)
		return
	}
	if errors.Is(err, manager.ErrInvalidName) {
		app.badRequest(w, r, err)
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, savedResponse{PaletteRecord: record})
}

// GET /v1/saved/{ref}
func (app *Application) getSaved(w http.ResponseWriter, r *http.Request) {
	record, err := app.Palettes.GetPalette(r.Context(), mux.Vars(r)["ref"])
	if errors.Is(err, manager.ErrPaletteNotFound) {
		app.paletteNotFound(w, r, err)
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, savedResponse{PaletteRecord: record, Stale: app.Palettes.IsStale(record)})
}

// DELETE /v1/saved/{ref}
func (app *Application) removeSaved(w http.ResponseWriter, r *http.Request) {
	record, err := app.Palettes.RemovePalette(r.Context(), mux.Vars(r)["ref"])
	if errors.Is(err, manager.ErrPaletteNotFound) {
		app.paletteNotFound(w, r, err)
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{"removed": record})
}
