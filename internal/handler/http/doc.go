// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the account gate.
//
// It wires chi routes to controllers through a generic route adapter that
// decodes the JSON body into a typed request and writes the resulting
// outcome back as status code plus JSON body. Request tracing, access
// logging, CORS and the default JSON content type are applied as middleware
// before a request reaches a controller.
package http
