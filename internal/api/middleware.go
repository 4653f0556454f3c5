package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"researchhub/internal/auth"
	"researchhub/internal/models"
)

type userHandler func(w http.ResponseWriter, r *http.Request, u models.User)

// requireUser resolves the Bearer token to a full user row before the handler
// runs. Ownership checks downstream only ever see a verified user id.
func (s *Server) requireUser(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeErr(w, http.StatusUnauthorized, fmt.Errorf("missing bearer token"))
			return
		}
		email, err := auth.ParseAccessToken(s.cfg.JWTSecret, token)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeErr(w, http.StatusUnauthorized, fmt.Errorf("invalid token"))
			return
		}
		u, err := s.users.GetByEmail(r.Context(), email)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeErr(w, http.StatusUnauthorized, fmt.Errorf("invalid token"))
			return
		}
		next(w, r, u)
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// pathID extracts the numeric id from paths like /api/papers/42. A second
// return of false means the remainder was empty or not a number.
func pathID(r *http.Request, prefix string) (int64, string, bool) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" {
		return 0, "", false
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", false
	}
	tail := ""
	if len(parts) == 2 {
		tail = parts[1]
	}
	return id, tail, true
}

func queryInt64(r *http.Request, key string) *int64 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
