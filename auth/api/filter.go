// Package api gates HTTP handlers behind the credential authorizer using
// the Basic authentication challenge-response scheme.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rollbook/rollbook/auth"
	"github.com/rollbook/rollbook/internal/logutil"
)

type (
	// Authorizer is the decision function the realm delegates to.
	Authorizer interface {
		Authorize(ctx context.Context, username, password string) (bool, error)
	}

	// SecurityRealm wraps sensitive handlers behind Basic authentication,
	// with an optional token-cookie shortcut for requests that already
	// went through a login.
	SecurityRealm struct {
		auth   Authorizer
		tokens auth.TokenStore
		name   string
	}
)

// TokenCookie is the cookie the login endpoint stores its token under.
const TokenCookie = "auth-token"

// NewRealm builds a realm around the given authorizer. tokens may be nil,
// in which case every request pays the full credential check.
func NewRealm(a Authorizer, tokens auth.TokenStore, name string) *SecurityRealm {
	return &SecurityRealm{auth: a, tokens: tokens, name: name}
}

// Protect returns a handler that only forwards to sensitive once the
// request carries valid credentials. The challenge never says which of
// bad-username / bad-password happened, and a broken credential store is
// a 500, not another challenge, so operators can tell an outage from a
// typo.
func (s *SecurityRealm) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.checkToken(r) {
			sensitive.ServeHTTP(w, r)
			return
		}
		user, passwd, ok := r.BasicAuth()
		if !ok {
			s.challenge(w)
			return
		}
		granted, err := s.auth.Authorize(ctx, user, passwd)
		if err != nil {
			logger := logutil.GetOrDefault(ctx)
			logger.Error().Err(err).Msg("Unable to check credentials")
			http.Error(w, "unable to verify credentials, server is mis-behaving", http.StatusInternalServerError)
			return
		}
		if !granted {
			s.challenge(w)
			return
		}
		sensitive.ServeHTTP(w, r)
	})
}

func (s *SecurityRealm) challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", s.name))
	http.Error(w, "Invalid credentials", http.StatusUnauthorized)
}

func (s *SecurityRealm) checkToken(r *http.Request) bool {
	if s.tokens == nil {
		return false
	}
	cookie, err := r.Cookie(TokenCookie)
	if err != nil {
		return false
	}
	found, err := s.tokens.Lookup(r.Context(), cookie.Value)
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Msg("Unexpected error when checking for token in token store")
		return false
	}
	return found
}
