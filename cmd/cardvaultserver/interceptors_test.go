package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/matryer/is"

	"github.com/domino14/cardvault/internal/auth"
)

var secret = []byte("test-secret")

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func header(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

func TestAuthenticateJWT(t *testing.T) {
	is := is.New(t)
	tok := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
		"sub": "user-17",
		"usn": "cesar",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	ctx, err := authenticateJWT(context.Background(), header(tok), secret)
	is.NoErr(err)
	u := auth.UserFromContext(ctx)
	is.True(u != nil)
	is.Equal(u.ID, "user-17")
	is.Equal(u.Username, "cesar")
}

func TestAuthenticateJWTRejects(t *testing.T) {
	is := is.New(t)
	exp := time.Now().Add(time.Hour).Unix()
	cases := map[string]string{
		"wrong key":   signed(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "u", "exp": exp}),
		"expired":     signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()}),
		"no expiry":   signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "u"}),
		"no subject":  signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"exp": exp}),
		"unsigned":    signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": "u", "exp": exp}),
		"not a token": "abc.def",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			_, err := authenticateJWT(context.Background(), header(tok), secret)
			is.True(err != nil)
		})
	}
	_, err := authenticateJWT(context.Background(), http.Header{}, secret)
	is.True(err != nil)
}
