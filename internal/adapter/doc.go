// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter binds third-party libraries to the narrow collaborator
// interfaces the request pipeline depends on.
//
// [EmailValidatorAdapter] implements validators.EmailChecker on top of
// github.com/go-playground/validator/v10.
package adapter
