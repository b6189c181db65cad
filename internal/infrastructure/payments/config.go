package payments

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	requestTimeout = 30 * time.Second
	retryMax       = 3
	retryWaitMin   = 500 * time.Millisecond
	retryWaitMax   = 8 * time.Second
)

// Config carries the Pesapal account and the URLs this service hands to the
// gateway. CallbackURL is where the payer's browser is redirected after the
// hosted payment page; IPNURL is the server-to-server notification endpoint
// registered once per 24h window.
type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	CallbackURL    string
	IPNURL         string
}

func ConfigFromEnv() Config {
	cfg := Config{
		BaseURL:        strings.TrimRight(os.Getenv("PESAPAL_BASE_URL"), "/"),
		ConsumerKey:    os.Getenv("PESAPAL_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("PESAPAL_CONSUMER_SECRET"),
		CallbackURL:    os.Getenv("PESAPAL_CALLBACK_URL"),
		IPNURL:         os.Getenv("PESAPAL_IPN_URL"),
	}
	if cfg.BaseURL == "" {
		log.Printf("[payment][config] PESAPAL_BASE_URL is not set")
	}
	return cfg
}

// newHTTPClient builds the retrying HTTP client shared by the credential cache
// and the gateway client: up to 3 retries with exponential backoff starting at
// 0.5s on 429/5xx and transport errors, 30s per request.
func newHTTPClient() *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.RetryWaitMin = retryWaitMin
	c.RetryWaitMax = retryWaitMax
	c.HTTPClient.Timeout = requestTimeout
	c.Logger = nil
	return c
}
