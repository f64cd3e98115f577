// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "file:accounts.db"
	cfg.Auth.TokenSignKey = "secret"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:   "argon2 ignores bcrypt cost",
			mutate: func(cfg *StructuredConfig) { cfg.Auth.PasswordHasher = PasswordHasherArgon2; cfg.Auth.BcryptCost = 0 },
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero read timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.ReadTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown hasher",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.PasswordHasher = "md5" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "bcrypt cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.BcryptCost = 3 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.BcryptCost = 32 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenIssuer = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "non-positive duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = -1 },
			wantErr: ErrInvalidAuthConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
