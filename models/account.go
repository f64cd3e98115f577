// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a persisted account record. It is owned by the account
// repository; the request pipeline only ever holds a read-only copy returned
// from a lookup or an insert.
type Account struct {
	// ID is assigned by the repository when the account is added.
	ID string `json:"id"`

	// Name is the display name supplied at sign-up.
	Name string `json:"name"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// PasswordHash is the encrypted password. It must never leave the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the record was stored.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// View returns the client-visible projection of the account.
func (a Account) View() AccountView {
	return AccountView{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

// AccountView is the body of a successful sign-up response.
type AccountView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AddAccountParams is the input of the add-account use case.
// Password is plaintext and is only ever handed to the encrypter.
type AddAccountParams struct {
	Name     string
	Email    string
	Password string
}

// NewAccount is the input of [Account] persistence: the password has already
// been replaced with its hash.
type NewAccount struct {
	Name         string
	Email        string
	PasswordHash string
}
