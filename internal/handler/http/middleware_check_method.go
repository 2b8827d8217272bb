// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// routeNotFound is registered both as the router's NotFound and
// MethodNotAllowed handler. Answering 404 for a known path with an
// unsupported method hides which paths exist, and keeps every failure in
// the JSON error format.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
