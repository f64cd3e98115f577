// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/result"
	"github.com/MKhiriev/go-account-gate/internal/store"
	"github.com/MKhiriev/go-account-gate/models"
)

// LogControllerDecorator persists the detail of every 500 outcome produced
// by the wrapped controller.
type LogControllerDecorator[Req any] struct {
	controller Controller[Req]
	sink       store.LogErrorRepository
	logger     *logger.Logger
}

// NewLogControllerDecorator wraps controller.
func NewLogControllerDecorator[Req any](controller Controller[Req], sink store.LogErrorRepository, log *logger.Logger) *LogControllerDecorator[Req] {
	return &LogControllerDecorator[Req]{
		controller: controller,
		sink:       sink,
		logger:     log,
	}
}

// Handle forwards req unchanged and returns the wrapped outcome untouched.
// A failing or panicking sink is logged and otherwise ignored. The sink
// runs detached from request cancellation.
func (d *LogControllerDecorator[Req]) Handle(ctx context.Context, req Req) models.Outcome {
	outcome := d.controller.Handle(ctx, req)
	if outcome.StatusCode != http.StatusInternalServerError {
		return outcome
	}

	detail := serverErrorDetail(outcome.Body)
	d.logger.Error().Str("detail", detail).Msg("request failed with server error")

	sinkCtx := context.WithoutCancel(ctx)
	if _, err := result.Try(func() (struct{}, error) {
		return struct{}{}, d.sink.LogError(sinkCtx, detail)
	}); err != nil {
		d.logger.Err(err).Msg("error persisting server error detail")
	}

	return outcome
}

func serverErrorDetail(body any) string {
	switch b := body.(type) {
	case models.ServerErrorBody:
		return b.Detail
	case *models.ServerErrorBody:
		if b != nil {
			return b.Detail
		}
		return ""
	case nil:
		return ""
	default:
		return fmt.Sprint(b)
	}
}
