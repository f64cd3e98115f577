// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"net/http"

	"github.com/MKhiriev/go-account-gate/models"
)

// ServerErrorMessage is the only text a client ever sees for a 500.
const ServerErrorMessage = "Server Error"

// OK returns a 200 outcome carrying body.
func OK(body any) models.Outcome {
	return models.Outcome{StatusCode: http.StatusOK, Body: body}
}

// BadRequest returns a 400 outcome whose body carries err's message.
func BadRequest(err error) models.Outcome {
	return models.Outcome{
		StatusCode: http.StatusBadRequest,
		Body:       models.ErrorBody{Error: err.Error()},
	}
}

// Unauthorized returns a 401 outcome with an empty body.
func Unauthorized() models.Outcome {
	return models.Outcome{StatusCode: http.StatusUnauthorized}
}

// ServerError returns a 500 outcome. The body serializes to the generic
// message; err is kept as the non-serialized detail.
func ServerError(err error) models.Outcome {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return models.Outcome{
		StatusCode: http.StatusInternalServerError,
		Body: models.ServerErrorBody{
			Error:  ServerErrorMessage,
			Detail: detail,
		},
	}
}
