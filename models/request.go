// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request field names. They double as JSON keys and as the names reported
// in validation errors.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// SignUpRequest is the body of POST /sign-up.
type SignUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ValidationInput returns the key-value view of the request that
// validation rules operate on.
func (r SignUpRequest) ValidationInput() map[string]string {
	return map[string]string{
		FieldName:            r.Name,
		FieldEmail:           r.Email,
		FieldPassword:        r.Password,
		FieldConfirmPassword: r.ConfirmPassword,
	}
}

// AddAccountParams converts the request into the add-account use case input.
func (r SignUpRequest) AddAccountParams() AddAccountParams {
	return AddAccountParams{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// Credentials is the body of POST /sign-in. It is transient and is never
// persisted as-is.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidationInput returns the key-value view of the credentials.
func (c Credentials) ValidationInput() map[string]string {
	return map[string]string{
		FieldEmail:    c.Email,
		FieldPassword: c.Password,
	}
}
