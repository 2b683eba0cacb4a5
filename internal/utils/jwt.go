// Package utils provides small helpers shared by the agent packages:
// unverified JWT inspection and run identifiers.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiry when the token has no exp claim.
var ErrNoExpiry = errors.New("token has no exp claim")

// TokenExpiry returns the exp claim of tokenString without verifying the
// signature.
//
// Example usage:
//
//	exp, err := utils.TokenExpiry(resp.IDToken)
//	if err == nil && exp.Before(expiry) {
//	    expiry = exp
//	}
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
