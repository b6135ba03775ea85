package authsdk

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// SessionCookieName is the cookie the service sets on signup and login.
const SessionCookieName = "session_id"

// SDKClient is a client for the Acad Co-Pilot account service. Its HTTP
// client keeps the session cookie between calls.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	base *url.URL
}

// NewSDKClient creates a client with an empty cookie jar.
func NewSDKClient(baseURL string) (*SDKClient, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &SDKClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			// Page routes redirect anonymous callers, surface that as-is.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		base: u,
	}, nil
}

// SessionToken returns the session cookie currently held, or "".
func (c *SDKClient) SessionToken() string {
	if c.HTTPClient.Jar == nil {
		return ""
	}
	for _, cookie := range c.HTTPClient.Jar.Cookies(c.base) {
		if cookie.Name == SessionCookieName {
			return cookie.Value
		}
	}
	return ""
}

// SetSessionToken replaces the held session cookie. An empty token clears it.
func (c *SDKClient) SetSessionToken(token string) {
	if c.HTTPClient.Jar == nil {
		return
	}
	cookie := &http.Cookie{Name: SessionCookieName, Value: token, Path: "/"}
	if token == "" {
		cookie.MaxAge = -1
	}
	c.HTTPClient.Jar.SetCookies(c.base, []*http.Cookie{cookie})
}
