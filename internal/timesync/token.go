package timesync

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// TokenExpired reports whether the client's authentication token has passed
// its expiration time. TimeSync tokens are JWTs with an exp claim in
// milliseconds. A client that has never authenticated has no token and
// counts as expired.
func (c *Client) TokenExpired() (bool, error) {
	if c.test {
		return false, nil
	}
	if c.token == "" {
		return true, nil
	}

	exp, err := tokenExpirationTime(c.token)
	if err != nil {
		return false, err
	}

	return time.Now().After(exp), nil
}

func tokenExpirationTime(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, errors.New("token is not a JWT")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, errors.New("token payload is not base64")
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, errors.New("token payload is not JSON")
	}
	if claims.Exp == 0 {
		return time.Time{}, errors.New("token has no exp claim")
	}

	return time.UnixMilli(claims.Exp), nil
}
