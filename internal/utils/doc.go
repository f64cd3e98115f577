// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// HTTP JSON response writing, JWT token generation and validation,
// and UUID generation.
package utils
