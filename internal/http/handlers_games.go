package http

import (
	nethttp "net/http"
	"strings"

	"ign-lookup-service/internal/lookup"
)

// gameView is the public shape of a supported game.
type gameView struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	Zone        bool   `json:"requires_zone"`
}

func toGameView(p lookup.GameProfile) gameView {
	return gameView{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Platform:    p.Platform,
		Zone:        p.RequiresZone,
	}
}

func profileZoneRequired(code string) (bool, bool) {
	p, ok := lookup.ProfileFor(code)
	if !ok {
		return false, false
	}
	return p.RequiresZone, true
}

// Games handles GET /api/games.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}

	profiles := lookup.Profiles()
	views := make([]gameView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, toGameView(p))
	}
	h.writeData(w, r, nethttp.StatusOK, "Games retrieved successfully", views)
}

// GameByCode handles GET /api/games/{code} and GET /api/games/search.
func (h *Handler) GameByCode(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w, r)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/api/games/")
	if code == "search" {
		h.searchGames(w, r)
		return
	}
	if code == "" {
		h.Games(w, r)
		return
	}

	p, ok := lookup.ProfileFor(code)
	if !ok {
		h.writeError(w, r, nethttp.StatusNotFound, "NotFoundError",
			"Game with code '"+code+"' not found")
		return
	}
	h.writeData(w, r, nethttp.StatusOK, "Game details retrieved successfully", toGameView(p))
}

func (h *Handler) searchGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		h.writeError(w, r, nethttp.StatusBadRequest, "ValidationError",
			`Please provide a search query parameter "q"`)
		return
	}

	matches := lookup.SearchProfiles(q)
	views := make([]gameView, 0, len(matches))
	for _, p := range matches {
		views = append(views, toGameView(p))
	}
	h.writeData(w, r, nethttp.StatusOK, "Search completed successfully", views)
}
