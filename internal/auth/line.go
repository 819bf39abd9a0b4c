package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	lineAuthURL    = "https://access.line.me/oauth2/v2.1/authorize"
	lineTokenURL   = "https://api.line.me/oauth2/v2.1/token"
	lineProfileURL = "https://api.line.me/v2/profile"
)

// LINEConfig holds LINE Login channel configuration.
type LINEConfig struct {
	ChannelID     string
	ChannelSecret string
	RedirectURI   string
}

// LINEService handles LINE Login authentication.
type LINEService struct {
	config     LINEConfig
	httpClient *http.Client

	// Endpoint overrides for tests.
	tokenURL   string
	profileURL string
}

// NewLINEService creates a new LINE service.
func NewLINEService(config LINEConfig) *LINEService {
	return &LINEService{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokenURL:   lineTokenURL,
		profileURL: lineProfileURL,
	}
}

// AuthURL generates the LINE authorization URL.
func (s *LINEService) AuthURL(state string) string {
	params := url.Values{
		"response_type": {"code"},
		"client_id":     {s.config.ChannelID},
		"redirect_uri":  {s.config.RedirectURI},
		"state":         {state},
		"scope":         {"profile openid"},
	}
	return lineAuthURL + "?" + params.Encode()
}

type lineTokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type lineProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}

// Exchange exchanges an authorization code for the LINE profile of the
// authenticated user. Implements IdentityVerifier.
func (s *LINEService) Exchange(ctx context.Context, code string) (*Identity, error) {
	data := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {s.config.RedirectURI},
		"client_id":     {s.config.ChannelID},
		"client_secret": {s.config.ChannelSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("token exchange failed: %s", string(body))
	}

	var tokenResp lineTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token exchange returned no access token")
	}

	profile, err := s.fetchProfile(ctx, tokenResp.AccessToken)
	if err != nil {
		return nil, err
	}

	return &Identity{
		ProviderID:  profile.UserID,
		DisplayName: profile.DisplayName,
	}, nil
}

func (s *LINEService) fetchProfile(ctx context.Context, accessToken string) (*lineProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.profileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("profile fetch failed: %s", string(body))
	}

	var profile lineProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if profile.UserID == "" {
		return nil, fmt.Errorf("profile response missing userId")
	}

	return &profile, nil
}
