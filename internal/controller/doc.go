// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller turns typed requests into status-coded outcomes.
//
// A [Controller] validates its request, calls exactly one use case and maps
// the result through the response helpers ([OK], [BadRequest],
// [Unauthorized], [ServerError]). Controllers never return errors: every
// collaborator failure, returned or panicked, becomes a 500 outcome whose
// diagnostic detail is not serialized.
//
// Decorators wrap a controller with the same contract:
//   - [NewLogControllerDecorator] forwards the detail of 500 outcomes to a
//     persistent log sink;
//   - [NewMetricsControllerDecorator] records outcome counts and durations.
//
// Controllers and decorators hold no mutable state and are safe for
// concurrent use.
package controller
