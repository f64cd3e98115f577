// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// invalidJSONMessage is sent with 400 when a request body cannot be decoded.
const invalidJSONMessage = "Invalid JSON was passed"
