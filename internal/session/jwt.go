package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessTokenExpiry extracts the "exp" claim from an access JWT without
// verifying the signature. The client is not the token's audience verifier;
// it only needs the expiry to schedule a proactive refresh.
func accessTokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errors.New("invalid token claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return exp.Time, nil
}
