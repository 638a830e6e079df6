package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
)

var errInvalidAuthorization = errors.New("Invalid authorization")

// Basic validate a base64 encoded username:password pair
func (m *mw) Basic(ctx context.Context, authKey string) error {
	data, err := base64.StdEncoding.DecodeString(authKey)
	if err != nil {
		return errInvalidAuthorization
	}

	decoded := strings.SplitN(string(data), ":", 2)
	if len(decoded) < 2 {
		return errInvalidAuthorization
	}
	username, password := decoded[0], decoded[1]

	if subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) != 1 ||
		subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) != 1 {
		return errInvalidAuthorization
	}
	return nil
}

func extractBasicAuth(authorization string) (string, error) {
	authValues := strings.Split(authorization, " ")
	if len(authValues) != 2 || strings.ToLower(authValues[0]) != "basic" {
		return "", errInvalidAuthorization
	}
	return authValues[1], nil
}
