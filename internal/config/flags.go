// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-read-timeout HTTP read timeout (e.g., "10s")
//	-write-timeout HTTP write timeout (e.g., "10s")
//	-allowed-origins comma separated CORS origins
//	-d database DSN
//	-db-max-retries retries for transient database errors
//	-password-hasher bcrypt or argon2
//	-bcrypt-cost bcrypt work factor
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var readTimeout, writeTimeout time.Duration
	var allowedOrigins string
	var databaseDSN string
	var dbMaxRetries uint64
	var passwordHasher string
	var bcryptCost int
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout (e.g., 10s)")
	flag.DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout (e.g., 10s)")
	flag.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.Uint64Var(&dbMaxRetries, "db-max-retries", 0, "Retries for transient database errors")
	flag.StringVar(&passwordHasher, "password-hasher", "", "Password hasher: bcrypt or argon2")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			PasswordHasher: passwordHasher,
			BcryptCost:     bcryptCost,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN:        databaseDSN,
				MaxRetries: dbMaxRetries,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
			AllowedOrigins: splitOrigins(allowedOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}

	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
