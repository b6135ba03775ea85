package authsdk

import (
	"context"
	"net/http"
)

// Signup creates an account. On success the client holds the new session.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", req)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// SendCode asks the service to email a verification code to email.
func (c *SDKClient) SendCode(ctx context.Context, email string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/send-code", SendCodeRequest{Email: email})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// VerifyCode submits a verification code for email.
func (c *SDKClient) VerifyCode(ctx context.Context, email, code string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/verify-code", VerifyCodeRequest{Email: email, Code: code})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Login authenticates with email and password. On success the client holds
// a new session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Logout ends the held session. It succeeds even without a session.
func (c *SDKClient) Logout(ctx context.Context) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Me returns the user behind the held session.
func (c *SDKClient) Me(ctx context.Context) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Accept": "application/json",
	})
	if err != nil {
		return nil, err
	}

	var out MeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}
