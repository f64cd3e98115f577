// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto adapts password hashing (bcrypt, argon2id) and token
// signing (JWT) libraries to the narrow interfaces the use cases depend on.
package crypto
