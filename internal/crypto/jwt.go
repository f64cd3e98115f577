// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-gate/internal/utils"
)

// JWTAdapter issues HMAC-SHA256 signed access tokens.
type JWTAdapter struct {
	issuer   string
	duration time.Duration
	signKey  string
}

// NewJWTAdapter returns a [JWTAdapter] for the given issuer, lifetime and
// secret.
func NewJWTAdapter(issuer string, duration time.Duration, signKey string) *JWTAdapter {
	return &JWTAdapter{
		issuer:   issuer,
		duration: duration,
		signKey:  signKey,
	}
}

// Generate returns a compact JWS whose subject is subjectID.
func (a *JWTAdapter) Generate(_ context.Context, subjectID string) (string, error) {
	token, err := utils.GenerateJWTToken(a.issuer, subjectID, a.duration, a.signKey)
	if err != nil {
		return "", err
	}

	return token.String(), nil
}
