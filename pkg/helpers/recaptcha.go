package helpers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Recaptcha verifies Google reCAPTCHA responses. An empty secret disables
// verification so local development works without keys.
type Recaptcha struct {
	Secret    string
	VerifyURL string
	Client    *http.Client
}

func NewRecaptcha(secret string) *Recaptcha {
	return &Recaptcha{
		Secret:    secret,
		VerifyURL: recaptchaVerifyURL,
		Client:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Enabled reports whether a secret key is configured.
func (r *Recaptcha) Enabled() bool { return r.Secret != "" }

// Verify checks the client token against the siteverify endpoint.
// Returns true when verification is disabled.
func (r *Recaptcha) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if !r.Enabled() {
		return true, nil
	}
	if token == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", r.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()

	var parsed struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return false, err
	}
	return parsed.Success, nil
}
