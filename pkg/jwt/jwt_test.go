package jwt_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"go-clinic-management/config"
	"go-clinic-management/pkg/jwt"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	c := qt.New(t)
	svc := jwt.NewJWTService(config.SessionConfig{Secret: "s3cret"})

	token, tokenID, err := svc.GenerateSessionToken(3, "admin")
	c.Assert(err, qt.IsNil)
	c.Assert(tokenID, qt.Not(qt.Equals), "")

	claims, err := svc.ValidateToken(token)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.UserID, qt.Equals, 3)
	c.Assert(claims.Username, qt.Equals, "admin")
	c.Assert(claims.TokenID, qt.Equals, tokenID)
	c.Assert(claims.ExpiresAt, qt.IsNil)
}

func TestSessionTokenWithTTL(t *testing.T) {
	c := qt.New(t)
	svc := jwt.NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: time.Hour})

	token, _, err := svc.GenerateSessionToken(1, "admin")
	c.Assert(err, qt.IsNil)

	claims, err := svc.ValidateToken(token)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.ExpiresAt, qt.Not(qt.IsNil))
	c.Assert(claims.ExpiresAt.Time.After(time.Now()), qt.IsTrue)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	c := qt.New(t)
	issuer := jwt.NewJWTService(config.SessionConfig{Secret: "one"})
	verifier := jwt.NewJWTService(config.SessionConfig{Secret: "two"})

	token, _, err := issuer.GenerateSessionToken(1, "admin")
	c.Assert(err, qt.IsNil)

	_, err = verifier.ValidateToken(token)
	c.Assert(err, qt.Not(qt.IsNil))

	_, err = verifier.ValidateToken("not-a-token")
	c.Assert(err, qt.Not(qt.IsNil))
}
