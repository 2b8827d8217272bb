// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrUnavailable covers network failures and 503/504 answers.
	ErrUnavailable = errors.New("validator unavailable")

	// ErrMalformedVerdict is returned when a 2xx body cannot be decoded.
	ErrMalformedVerdict = errors.New("malformed validator response")
)
