package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-fit-tracker"

// HTTPClient wraps resty.Client for calls the gateway makes to itself or to
// other services. The embedded client keeps the full resty API available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL that expects JSON answers.
// A non-positive timeout leaves resty's default (no timeout) in place.
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8000", 3*time.Second)
//	resp, err := client.R().Get("/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
