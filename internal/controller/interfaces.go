// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-gate/models"
)

// Controller handles a typed request and produces an [models.Outcome].
type Controller[Req any] interface {
	Handle(ctx context.Context, req Req) models.Outcome
}

// ControllerFunc adapts a plain function to [Controller].
type ControllerFunc[Req any] func(ctx context.Context, req Req) models.Outcome

// Handle calls f(ctx, req).
func (f ControllerFunc[Req]) Handle(ctx context.Context, req Req) models.Outcome {
	return f(ctx, req)
}

// OutcomeRecorder records one handled request per route.
type OutcomeRecorder interface {
	ObserveOutcome(route string, status int, duration time.Duration)
}
