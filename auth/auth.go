package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/rollbook/rollbook/flatfile"
	"golang.org/x/crypto/bcrypt"
)

type (
	// Mode selects how the password column of the credential file is
	// checked against the presented password.
	Mode int

	// Authorizer is a pure decision function over the credential file at
	// call time. It keeps no state between attempts.
	Authorizer struct {
		creds *flatfile.Table
		mode  Mode
	}
)

const (
	// Hashed expects bcrypt digests in the password column. This is the
	// production mode.
	Hashed Mode = iota
	// Plaintext compares the password column directly. Kept for demos and
	// local experiments, never for production credential files.
	Plaintext
)

// NewAuthorizer binds the authorizer to a credential table.
func NewAuthorizer(creds *flatfile.Table, mode Mode) *Authorizer {
	return &Authorizer{creds: creds, mode: mode}
}

// Authorize reports whether the pair matches a stored record. A broken
// credential store surfaces as a non-nil error, it never masquerades as a
// plain denial.
func (a *Authorizer) Authorize(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	doc, err := a.creds.Load(ctx)
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	stored, found := findUser(doc, username)
	if !found {
		return false, nil
	}
	if stored.Missing || stored.Value == "" {
		return false, nil
	}
	switch a.mode {
	case Plaintext:
		return safeCompare(password, stored.Value), nil
	default:
		return checkHash(ctx, password, stored.Value)
	}
}

// findUser returns the password cell of the first row, in file order,
// whose username cell matches. The file does not enforce unique usernames
// so first-match-wins is the tie-break.
func findUser(doc flatfile.Document, username string) (flatfile.Field, bool) {
	for _, rec := range doc.Rows {
		if rec.Key.Missing || rec.Key.Value == "" {
			continue
		}
		if safeCompare(username, rec.Key.Value) {
			return rec.Value, true
		}
	}
	return flatfile.Field{}, false
}

// checkHash runs the bcrypt verification off the calling goroutine so a
// cancelled request does not sit through the whole key derivation. A
// digest that bcrypt cannot parse counts as a denial, one rotten row must
// not crash a login attempt.
func checkHash(ctx context.Context, password, hash string) (bool, error) {
	verdict := make(chan error, 1)
	go func() {
		verdict <- bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	}()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-verdict:
		return err == nil, nil
	}
}

// safeCompare takes the same time no matter where, or whether, the inputs
// differ. Hashing first keeps length differences out of the timing too.
func safeCompare(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}

// HashPassword produces the bcrypt digest stored in the credential file.
func HashPassword(password string) (string, error) {
	buf, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
