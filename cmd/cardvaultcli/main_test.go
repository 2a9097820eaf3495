package main

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/matryer/is"
)

func TestUsernameFromToken(t *testing.T) {
	is := is.New(t)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42", "usn": "cesar"}).
		SignedString([]byte("k"))
	is.NoErr(err)
	is.Equal(usernameFromToken(tok), "cesar")

	tok, err = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"}).SignedString([]byte("k"))
	is.NoErr(err)
	is.Equal(usernameFromToken(tok), "42")

	is.Equal(usernameFromToken("garbage"), "?")
}
