package controllers

import (
	"context"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"
)

// IssueToken exchanges the configured credentials for a signed bearer
// token. There is a single implicit account, so no user store is involved.
func (c *Controller) IssueToken(ctx context.Context, username, password string) (*schemas.TokenResponse, error) {
	if username != c.AuthCfg.Username || password != c.AuthCfg.Password {
		return nil, utils.Unauthorized("invalid credentials")
	}

	ttl := time.Duration(c.AuthCfg.TokenTTLMins) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	claims := map[string]interface{}{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	_, tokenString, err := c.TokenAuth.Encode(claims)
	if err != nil {
		return nil, err
	}

	return &schemas.TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}
