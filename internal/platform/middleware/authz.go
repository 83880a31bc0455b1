// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/quangdam/mercata/internal/platform/apperr"
	"github.com/quangdam/mercata/internal/platform/constants"
	"github.com/quangdam/mercata/internal/platform/ctxutil"
	"github.com/quangdam/mercata/internal/platform/respond"
	"github.com/quangdam/mercata/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the API token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the token via [TokenVerifier].
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithClient(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole guards a route group behind an authenticated client holding
// the given role. The editor role additionally satisfies viewer checks.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetClient(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if claims.Role != role && claims.Role != constants.RoleEditor {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
