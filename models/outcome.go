// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Outcome is the status-coded result a controller produces for a single
// request. It is the only value that crosses the pipeline boundary.
//
// The shape of Body is fully determined by StatusCode:
//   - 200: a success payload ([AccountView] or [AccessToken]);
//   - 400: [ErrorBody];
//   - 401: nil (empty body);
//   - 500: [ServerErrorBody].
type Outcome struct {
	StatusCode int
	Body       any
}

// ErrorBody is the body of a client error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// ServerErrorBody is the body of a 500 response. Only the generic message is
// serialized; Detail carries the original failure for server-side logging.
type ServerErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"-"`
}
