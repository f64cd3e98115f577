// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app composes the request pipeline: validation composites,
// controllers wrapped in their decorators and the HTTP handler serving them.
package app
