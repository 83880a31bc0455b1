// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

// Package sec provides token management for API authentication.
//
// # Architecture
//
// This package isolates security-sensitive code (token signing and
// verification) from the domain logic. It is an Infrastructure service
// injected into the middleware via the TokenVerifier interface.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a Mercata API token.
//
// Mercata is a headless service: tokens identify machine clients (storefronts,
// import pipelines, admin tools), not end users. Embedding the role directly
// in the token lets the middleware authorize mutations without a database
// round-trip on every request.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the token payload small.
	ClientID string `json:"cid"`
	Role     string `json:"rol"`
}

// TokenService handles generation and verification of API tokens using HS256.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService from a shared signing secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: token secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// GenerateToken creates a new signed API token for a client.
func (service *TokenService) GenerateToken(clientID, role string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		ClientID: clientID,
		Role:     role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a token string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
