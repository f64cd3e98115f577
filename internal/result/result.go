// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package result captures collaborator failures as ordinary data.
//
// [Try] runs a synchronous operation, [TryAsync] runs one in its own
// goroutine and [Await] collects it. In both cases a returned error or a
// panic ends up in the error half of a (data, error) pair, so controllers can
// classify every collaborator failure in one place.
package result

import (
	"errors"
	"fmt"
)

// ErrPanic wraps a value recovered from a panicking operation.
var ErrPanic = errors.New("operation panicked")

// Result is the outcome of an asynchronous operation. Exactly one of Data
// and Err is meaningful: when Err is non-nil Data holds the zero value.
type Result[T any] struct {
	Data T
	Err  error
}

// Try runs fn and returns its result. A panic inside fn is recovered and
// returned as an error wrapping [ErrPanic].
func Try[T any](fn func() (T, error)) (data T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			data, err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	data, err = fn()
	if err != nil {
		var zero T
		return zero, err
	}
	return data, nil
}

// TryAsync runs fn in a new goroutine. The returned channel receives exactly
// one [Result] and is then closed.
func TryAsync[T any](fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		data, err := Try(fn)
		ch <- Result[T]{Data: data, Err: err}
	}()
	return ch
}

// Await blocks until the operation started by [TryAsync] completes and
// unpacks its [Result].
func Await[T any](ch <-chan Result[T]) (T, error) {
	r, ok := <-ch
	if !ok {
		var zero T
		return zero, errors.New("result channel closed without a value")
	}
	return r.Data, r.Err
}
