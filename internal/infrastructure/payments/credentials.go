package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"mbg_backend/internal/infrastructure/cache"
)

const (
	tokenCacheKey    = "pesapal:access_token"
	ipnIDCacheKey    = "pesapal:ipn_id"
	tokenTTLFallback = 300 * time.Second
	tokenTTLMin      = 30 * time.Second
	tokenTTLSafety   = 10 * time.Second
	ipnIDTTL         = 24 * time.Hour
)

// CredentialCache fetches and caches the two Pesapal credentials: the
// short-lived bearer token and the longer-lived IPN notification id.
//
// Both getters return "" on any failure; callers must treat "" as "cannot
// proceed". Concurrent cache misses may fetch twice; last writer wins, which
// is safe because both gateway operations are idempotent.

type CredentialCache struct {
	cfg   Config
	cache cache.Cache
	http  *retryablehttp.Client
}

func NewCredentialCache(cfg Config, c cache.Cache) *CredentialCache {
	return &CredentialCache{cfg: cfg, cache: c, http: newHTTPClient()}
}

type tokenResponse struct {
	Token     string      `json:"token"`
	ExpiresIn json.Number `json:"expires_in"`
	Error     any         `json:"error"`
}

// AccessToken returns a cached token or requests a fresh one. The cache TTL is
// the server-reported expiry minus a safety margin, never below 30s, with a
// 300s fallback when the gateway omits the expiry.
func (c *CredentialCache) AccessToken(ctx context.Context) string {
	if tok, ok := c.cache.Get(ctx, tokenCacheKey); ok {
		return tok
	}

	body, err := json.Marshal(map[string]string{
		"consumer_key":    c.cfg.ConsumerKey,
		"consumer_secret": c.cfg.ConsumerSecret,
	})
	if err != nil {
		log.Printf("[payment][credentials] token request marshal failed err=%v", err)
		return ""
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/Auth/RequestToken", bytes.NewReader(body))
	if err != nil {
		log.Printf("[payment][credentials] token request build failed err=%v", err)
		return ""
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[payment][credentials] token request failed err=%v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[payment][credentials] token request rejected status=%d", resp.StatusCode)
		return ""
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		log.Printf("[payment][credentials] token response decode failed err=%v", err)
		return ""
	}
	if tr.Token == "" {
		log.Printf("[payment][credentials] token response missing token")
		return ""
	}

	c.cache.Set(ctx, tokenCacheKey, tr.Token, tokenTTL(tr.ExpiresIn))
	log.Printf("[payment][credentials] access token obtained and cached")
	return tr.Token
}

func tokenTTL(expiresIn json.Number) time.Duration {
	ttl := tokenTTLFallback
	if expiresIn != "" {
		if secs, err := strconv.Atoi(expiresIn.String()); err == nil {
			ttl = time.Duration(secs)*time.Second - tokenTTLSafety
		}
	}
	if ttl < tokenTTLMin {
		ttl = tokenTTLMin
	}
	return ttl
}

type ipnRegistrationResponse struct {
	IPNID string `json:"ipn_id"`
	Error any    `json:"error"`
}

// NotificationID returns the cached IPN id, registering the notification URL
// with the gateway at most once per 24h window. Registration requires a valid
// access token.
func (c *CredentialCache) NotificationID(ctx context.Context) string {
	if id, ok := c.cache.Get(ctx, ipnIDCacheKey); ok {
		return id
	}

	token := c.AccessToken(ctx)
	if token == "" {
		log.Printf("[payment][credentials] cannot register IPN without access token")
		return ""
	}

	body, err := json.Marshal(map[string]string{
		"url":                   c.cfg.IPNURL,
		"ipn_notification_type": "POST",
	})
	if err != nil {
		log.Printf("[payment][credentials] ipn request marshal failed err=%v", err)
		return ""
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/URLSetup/RegisterIPN", bytes.NewReader(body))
	if err != nil {
		log.Printf("[payment][credentials] ipn request build failed err=%v", err)
		return ""
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[payment][credentials] ipn registration failed err=%v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[payment][credentials] ipn registration rejected status=%d", resp.StatusCode)
		return ""
	}

	var ir ipnRegistrationResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		log.Printf("[payment][credentials] ipn response decode failed err=%v", err)
		return ""
	}
	if ir.IPNID == "" {
		log.Printf("[payment][credentials] ipn registration returned no ipn_id")
		return ""
	}

	c.cache.Set(ctx, ipnIDCacheKey, ir.IPNID, ipnIDTTL)
	log.Printf("[payment][credentials] ipn registered and cached")
	return ir.IPNID
}
