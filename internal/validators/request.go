// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/vera-node/internal/identity"
	"github.com/MKhiriev/vera-node/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldArea         = "area"
	FieldSecretKey    = "secret_key"
	FieldContent      = "content"
	FieldVotingEndsAt = "voting_ends_at"
	FieldVoteType     = "vote_type"
	FieldRumorID      = "rumor_id"
	FieldProfileID    = "profile_id"
	FieldState        = "state"
	FieldCredentials  = "credentials"
	FieldTarget       = "target"
)

// MaxContentLength is the longest rumor text accepted, in characters.
const MaxContentLength = 2000

// RequestValidator checks the structure of API requests before any lookup
// or state change. Business rules that need storage or the clock stay in
// the services.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the request type. With no fields given every
// field of the request is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.check(fields, []string{FieldArea}, func(f string) error {
			return checkArea(value.Area)
		})
	case models.LoginRequest:
		return v.check(fields, []string{FieldSecretKey}, func(f string) error {
			return checkSecretKey(value.SecretKey)
		})
	case models.RecoverRequest:
		return v.check(fields, []string{FieldSecretKey, FieldArea}, func(f string) error {
			if f == FieldArea {
				return checkArea(value.Area)
			}
			return checkSecretKey(value.SecretKey)
		})
	case models.CreateRumorRequest:
		return v.validateCreateRumor(value, fields...)
	case *models.CreateRumorRequest:
		return v.validateCreateRumor(*value, fields...)
	case models.ValidateContentRequest:
		return v.check(fields, []string{FieldContent}, func(f string) error {
			return checkContent(value.Content)
		})
	case models.CastVoteRequest:
		return v.validateCastVote(value, fields...)
	case models.VoteStatusRequest:
		return v.check(fields, []string{FieldProfileID, FieldRumorID, FieldSecretKey}, func(f string) error {
			switch f {
			case FieldProfileID:
				return required(value.ProfileID, ErrEmptyProfileID)
			case FieldRumorID:
				return required(value.RumorID, ErrEmptyRumorID)
			default:
				return checkSecretKey(value.SecretKey)
			}
		})
	case models.RumorFilter:
		return v.validateFilter(value, fields...)
	case models.AdminLoginRequest:
		return v.check(fields, []string{FieldCredentials}, func(f string) error {
			if value.Username == "" || value.Password == "" {
				return ErrEmptyCredentials
			}
			return nil
		})
	case models.UnblockRequest:
		return v.check(fields, []string{FieldTarget}, func(f string) error {
			if (value.SecretKey == "") == (value.ProfileID == "") {
				return ErrAmbiguousUnblock
			}
			if value.SecretKey != "" {
				return checkSecretKey(value.SecretKey)
			}
			return nil
		})
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateCreateRumor(req models.CreateRumorRequest, fields ...string) error {
	all := []string{FieldProfileID, FieldContent, FieldArea, FieldVotingEndsAt}
	return v.check(fields, all, func(f string) error {
		switch f {
		case FieldProfileID:
			return required(req.PosterID, ErrEmptyProfileID)
		case FieldContent:
			return checkContent(req.Content)
		case FieldArea:
			return checkArea(req.AreaOfVote)
		default:
			if req.VotingEndsAt.IsZero() {
				return ErrMissingDeadline
			}
			return nil
		}
	})
}

func (v *RequestValidator) validateCastVote(req models.CastVoteRequest, fields ...string) error {
	all := []string{FieldProfileID, FieldRumorID, FieldVoteType, FieldSecretKey}
	return v.check(fields, all, func(f string) error {
		switch f {
		case FieldProfileID:
			return required(req.ProfileID, ErrEmptyProfileID)
		case FieldRumorID:
			return required(req.RumorID, ErrEmptyRumorID)
		case FieldVoteType:
			if !req.VoteType.Valid() {
				return ErrInvalidVoteType
			}
			return nil
		default:
			return checkSecretKey(req.SecretKey)
		}
	})
}

// validateFilter accepts zero values, which mean "no filter".
func (v *RequestValidator) validateFilter(filter models.RumorFilter, fields ...string) error {
	return v.check(fields, []string{FieldArea, FieldState}, func(f string) error {
		if f == FieldArea {
			if filter.Area != "" {
				return checkArea(filter.Area)
			}
			return nil
		}
		if filter.State != "" && !filter.State.Valid() {
			return ErrInvalidState
		}
		return nil
	})
}

// check runs fn for each requested field, or for all when none are given.
// A requested field outside all yields ErrUnknownField.
func (v *RequestValidator) check(fields, all []string, fn func(field string) error) error {
	if len(fields) == 0 {
		fields = all
	}

	for _, f := range fields {
		known := false
		for _, a := range all {
			if a == f {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func checkArea(a models.Area) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidArea, a)
	}
	return nil
}

func checkContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return fmt.Errorf("%w: at most %d characters", ErrContentTooLong, MaxContentLength)
	}
	return nil
}

func checkSecretKey(key string) error {
	_, err := identity.NormalizeSecretKey(key)
	return err
}

func required(s string, err error) error {
	if strings.TrimSpace(s) == "" {
		return err
	}
	return nil
}
