package main

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"openmusic/internal/app/albums"
	"openmusic/internal/app/auth"
	"openmusic/internal/app/collaborations"
	"openmusic/internal/app/exports"
	"openmusic/internal/app/playlists"
	"openmusic/internal/app/songs"
	"openmusic/internal/app/users"
	"openmusic/internal/httpapi"
	"openmusic/internal/store"
)

func newHTTPHandler(
	cfg Config,
	dataStore *store.Store,
	likesCache albums.Cache,
	covers albums.CoverStorage,
	publisher exports.Publisher,
	tokens *auth.TokenManager,
	log zerolog.Logger,
) http.Handler {
	albumSvc := albums.New(dataStore, likesCache, covers, log)
	songSvc := songs.New(dataStore)
	userSvc := users.New(dataStore)
	authSvc := auth.New(dataStore, tokens)
	playlistSvc := playlists.New(dataStore)

	// Derived services
	collaborationSvc := collaborations.New(dataStore, playlistSvc)
	exportSvc := exports.New(playlistSvc, publisher)

	api := httpapi.New(albumSvc, songSvc, userSvc, authSvc, playlistSvc, collaborationSvc, exportSvc, tokens, log)

	handler := api.Routes()
	handler = httpapi.Recovery(log)(handler)
	handler = httpapi.RequestLogging(log)(handler)
	return withCORS(cfg.AllowedOrigins, handler)
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
