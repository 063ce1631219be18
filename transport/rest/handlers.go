package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/playforge/tictactoe-web/internal/apperror"
	"github.com/playforge/tictactoe-web/internal/pkg"
)

const sessionCookieName = "user_session"

type sessionHandler func(w http.ResponseWriter, r *http.Request, sessionID string)

type moveRequest struct {
	Cell *int `json:"cell"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

// withSession - resolves the session cookie, creating one on the first visit.
func (that *Server) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			cookie = &http.Cookie{
				Name:     sessionCookieName,
				Value:    pkg.GenerateNewSessionID(),
				Expires:  time.Now().Add(24 * time.Hour),
				Path:     "/",
				HttpOnly: true,
			}
			http.SetCookie(w, cookie)
		}

		next(w, r, cookie.Value)
	}
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleGameState(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	that.writeJSON(w, that.manager.CurrentGame(sessionID))
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	state, err := that.manager.MakeTurn(sessionID, *req.Cell)
	if err != nil && !apperror.IsRejectedMove(err) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// a rejected click is ignored: the page re-renders the unchanged state
	that.writeJSON(w, state)
}

func (that *Server) handleRestart(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	that.writeJSON(w, that.manager.Restart(sessionID))
}

func (that *Server) handleTheme(w http.ResponseWriter, r *http.Request, sessionID string) {
	switch r.Method {
	case http.MethodGet:
		theme, err := that.manager.Theme(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		that.writeJSON(w, themeResponse{Theme: theme})
	case http.MethodPut:
		var req themeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		err := that.manager.SaveTheme(r.Context(), sessionID, req.Theme)
		if errors.Is(err, apperror.ErrUnknownTheme) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		that.writeJSON(w, themeResponse{Theme: req.Theme})
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
