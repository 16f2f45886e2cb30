package auth

import "time"

// NewTestJWTService creates a JWT service with a fixed secret, lifetime
// and clock for deterministic tests. Clock skew is disabled so expiry
// boundaries are exact.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
