// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-account-gate/internal/controller"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/utils"
	"github.com/MKhiriev/go-account-gate/models"
)

// maxBodyBytes caps a request body at 100 KiB.
const maxBodyBytes = 100 << 10

// adapt turns a typed controller into an HTTP handler: the JSON body is
// decoded into Req and the outcome is written back verbatim.
func adapt[Req any](c controller.Controller[Req]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var req Req
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			log.Err(err).Msg("error decoding request body")
			if _, err = utils.WriteJSON(w, models.ErrorBody{Error: invalidJSONMessage}, http.StatusBadRequest); err != nil {
				log.Err(err).Msg("error writing response")
			}
			return
		}

		outcome := c.Handle(r.Context(), req)
		if _, err := utils.WriteJSON(w, outcome.Body, outcome.StatusCode); err != nil {
			log.Err(err).Int("status", outcome.StatusCode).Msg("error writing response")
		}
	}
}
