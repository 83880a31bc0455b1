// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangdam/mercata/internal/platform/ctxutil"
	"github.com/quangdam/mercata/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Client verifies that client claims can be stored in context.
*/
func TestContext_Client(t *testing.T) {
	ctx := context.Background()

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetClient(ctx))

	// 2. Inject and retrieve
	claims := &sec.AuthClaims{ClientID: "storefront-eu", Role: "editor"}
	ctx = ctxutil.WithClient(ctx, claims)
	assert.Equal(t, claims, ctxutil.GetClient(ctx))
}
