package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"steamwiki/internal/config"
	"steamwiki/pkg/utils"
)

const (
	steamOpenIDNamespace = "http://specs.openid.net/auth/2.0"
	identifierSelect     = "http://specs.openid.net/auth/2.0/identifier_select"

	defaultOpenIDEndpoint = "https://steamcommunity.com/openid/login"
	defaultAPIBase        = "http://api.steampowered.com"
)

// Claimed identity URLs end in /id/<digits>; anything else is rejected.
var steamIDPattern = regexp.MustCompile(`/id/(\d+)$`)

type SteamProfile struct {
	Username  string
	AvatarURL string
}

type SteamServiceInterface interface {
	LoginURL(returnURL string) string
	VerifyCallback(ctx context.Context, params url.Values) (string, error)
	FetchProfile(ctx context.Context, steamID string) (*SteamProfile, error)
}

type SteamService struct {
	client         *http.Client
	openIDEndpoint string
	apiBase        string
	apiKey         string
}

func NewSteamService(cfg *config.Config) SteamServiceInterface {
	return &SteamService{
		client:         &http.Client{Timeout: 10 * time.Second},
		openIDEndpoint: defaultOpenIDEndpoint,
		apiBase:        defaultAPIBase,
		apiKey:         cfg.SteamAPIKey,
	}
}

func (s *SteamService) LoginURL(returnURL string) string {
	realm := returnURL
	if idx := strings.LastIndex(returnURL, "/"); idx > 0 {
		realm = returnURL[:idx]
	}

	params := url.Values{}
	params.Set("openid.ns", steamOpenIDNamespace)
	params.Set("openid.mode", "checkid_setup")
	params.Set("openid.return_to", returnURL)
	params.Set("openid.realm", realm)
	params.Set("openid.identity", identifierSelect)
	params.Set("openid.claimed_id", identifierSelect)

	return s.openIDEndpoint + "?" + params.Encode()
}

// VerifyCallback re-submits the callback parameters to Steam with the
// mode overridden to check_authentication and accepts the assertion only
// on an explicit is_valid:true. A transport error counts as an invalid
// assertion, never as a crash.
func (s *SteamService) VerifyCallback(ctx context.Context, params url.Values) (string, error) {
	validation := url.Values{}
	for key, values := range params {
		for _, v := range values {
			validation.Add(key, v)
		}
	}
	validation.Set("openid.mode", "check_authentication")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.openIDEndpoint,
		strings.NewReader(validation.Encode()))
	if err != nil {
		return "", utils.ErrSteamInvalidResponse
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", utils.ErrSteamInvalidResponse
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || !strings.Contains(string(body), "is_valid:true") {
		return "", utils.ErrSteamInvalidResponse
	}

	match := steamIDPattern.FindStringSubmatch(params.Get("openid.claimed_id"))
	if match == nil {
		return "", utils.ErrSteamIDNotFound
	}

	return match[1], nil
}

func (s *SteamService) FetchProfile(ctx context.Context, steamID string) (*SteamProfile, error) {
	if s.apiKey == "" {
		return nil, utils.ErrSteamProfileFetch
	}

	endpoint := s.apiBase + "/ISteamUser/GetPlayerSummaries/v0002/?key=" +
		url.QueryEscape(s.apiKey) + "&steamids=" + url.QueryEscape(steamID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, utils.ErrSteamProfileFetch
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, utils.ErrSteamProfileFetch
	}
	defer resp.Body.Close()

	var payload struct {
		Response struct {
			Players []struct {
				PersonaName string `json:"personaname"`
				AvatarFull  string `json:"avatarfull"`
			} `json:"players"`
		} `json:"response"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, utils.ErrSteamProfileFetch
	}
	if len(payload.Response.Players) == 0 {
		return nil, utils.ErrSteamProfileFetch
	}

	player := payload.Response.Players[0]
	return &SteamProfile{
		Username:  player.PersonaName,
		AvatarURL: player.AvatarFull,
	}, nil
}
