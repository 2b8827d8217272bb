// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of vera-node.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging with metrics, response compression and session checks are
// handled in this package before requests are delegated to the service layer.
// Every failure is answered with a models.ErrorResponse body.
package http
