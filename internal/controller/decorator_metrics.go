// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-gate/models"
)

// MetricsControllerDecorator records the status and duration of every
// outcome produced by the wrapped controller.
type MetricsControllerDecorator[Req any] struct {
	controller Controller[Req]
	route      string
	recorder   OutcomeRecorder
}

// NewMetricsControllerDecorator wraps controller; route labels the recorded
// samples.
func NewMetricsControllerDecorator[Req any](controller Controller[Req], route string, recorder OutcomeRecorder) *MetricsControllerDecorator[Req] {
	return &MetricsControllerDecorator[Req]{
		controller: controller,
		route:      route,
		recorder:   recorder,
	}
}

// Handle forwards req and returns the wrapped outcome untouched.
func (d *MetricsControllerDecorator[Req]) Handle(ctx context.Context, req Req) models.Outcome {
	start := time.Now()
	outcome := d.controller.Handle(ctx, req)
	d.recorder.ObserveOutcome(d.route, outcome.StatusCode, time.Since(start))
	return outcome
}
