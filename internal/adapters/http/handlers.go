package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
	"svw.info/minesweeper/internal/i18n"
	"svw.info/minesweeper/internal/usecase"
	"svw.info/minesweeper/internal/view"
)

type Handler struct {
	UC *usecase.Service
	// Lang is used when the request names no supported language.
	Lang language.Tag
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc, Lang: i18n.Default()} }

func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/games", h.handleNew)
		r.Get("/games/{id}", h.handleGet)
		r.Delete("/games/{id}", h.handleAbandon)
		r.Post("/games/{id}/primary", h.handlePrimary)
		r.Post("/games/{id}/secondary", h.handleSecondary)
		r.Get("/history", h.handleHistory)
	})
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindInvalidBoard:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorResp{Error: err.Error()})
}

// decode reads an optional JSON body; an empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *Handler) lang(r *http.Request) language.Tag {
	if q := strings.TrimSpace(r.URL.Query().Get("lang")); q != "" {
		return i18n.Match(q)
	}
	if accept := r.Header.Get("Accept-Language"); strings.TrimSpace(accept) != "" {
		return i18n.Match(accept)
	}
	return h.Lang
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, s *engine.Session) {
	writeJSON(w, status, view.Build(s, i18n.Printer(h.lang(r))))
}

// ---- New / Get / Abandon ----

type newGameReq struct {
	Seed int64 `json:"seed,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	s, err := h.UC.NewGame(r.Context(), req.Seed)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.render(w, r, http.StatusCreated, s)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.UC.Game(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	h.render(w, r, http.StatusOK, s)
}

func (h *Handler) handleAbandon(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- Actions ----

type actionReq struct {
	Row  *int   `json:"row"`
	Col  *int   `json:"col"`
	Mode string `json:"mode,omitempty"`
}

func (h *Handler) act(w http.ResponseWriter, r *http.Request, kind domain.ActionKind) {
	var req actionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Row == nil || req.Col == nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "row and col are required"})
		return
	}
	a := domain.Action{
		Kind:  kind,
		Coord: domain.Coord{Row: *req.Row, Col: *req.Col},
		Mode:  domain.ParseInputMode(req.Mode),
	}
	s, err := h.UC.Act(r.Context(), chi.URLParam(r, "id"), a)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.render(w, r, http.StatusOK, s)
}

func (h *Handler) handlePrimary(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, domain.Primary)
}

func (h *Handler) handleSecondary(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, domain.Secondary)
}

// ---- History ----

type historyResp struct {
	Games []domain.GameRecord `json:"games"`
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	recs, err := h.UC.History(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResp{Games: recs})
}
