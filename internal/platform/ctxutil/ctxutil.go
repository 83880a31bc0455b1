// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/quangdam/mercata/internal/platform/ctxkey"
	"github.com/quangdam/mercata/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithClient returns a new context with the provided client claims attached.
func WithClient(ctx context.Context, client *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyClient, client)
}

// GetClient retrieves the [*sec.AuthClaims] from the [context.Context].
func GetClient(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyClient).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
