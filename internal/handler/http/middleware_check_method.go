// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Art-of-Technology/collab-sub012/internal/utils"
	"github.com/Art-of-Technology/collab-sub012/models"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// Instead of chi's 405 it answers 404, so that probing a route with the
// wrong method does not reveal that the route exists. Only static patterns
// are compared; a trailing slash is ignored.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requested := strings.TrimSuffix(r.URL.Path, "/")

		for _, route := range router.Routes() {
			if strings.TrimSuffix(route.Pattern, "/") != requested {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	}
}
