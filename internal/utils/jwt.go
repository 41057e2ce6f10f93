package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/greenjets/bladerunner-portal/models"
)

// ErrTokenExpired is returned by ValidateAndParseJWTToken when the token's
// "exp" claim lies in the past. Callers can distinguish it from a malformed
// or tampered token via [errors.Is].
var ErrTokenExpired = errors.New("token is expired")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT asserting the given user
// identity.
//
// The token includes the following claims:
//   - Issuer    (iss):  identifies the service that issued the token
//   - Subject   (sub):  the user id encoded as a string
//   - IssuedAt  (iat):  the current time
//   - ExpiresAt (exp):  the current time plus tokenDuration
//   - user           :  {id, role} — the identity snapshot verified by the
//     authorization gate without a database round trip
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateJWTToken(issuer string, identity models.TokenIdentity, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}
	if identity.ID == 0 || identity.Role == "" {
		return models.Token{}, errors.New("invalid identity for generating JWT token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(identity.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Signing-method check (HS256 family only)
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim check
//   - Presence of the embedded user identity (id and role)
//
// Returns [ErrTokenExpired] (wrapped) when the token is past its expiry, or
// another error for any other validation failure.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims models.TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.User.ID == 0 {
		return models.Token{}, errors.New("token carries no user identity")
	}
	if claims.User.Role == "" {
		return models.Token{}, errors.New("token carries no role")
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}
