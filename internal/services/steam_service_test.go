package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steamwiki/pkg/utils"
)

func newTestSteamService(openIDEndpoint, apiBase, apiKey string) *SteamService {
	return &SteamService{
		client:         &http.Client{Timeout: time.Second},
		openIDEndpoint: openIDEndpoint,
		apiBase:        apiBase,
		apiKey:         apiKey,
	}
}

func callbackParams(claimedID string) url.Values {
	params := url.Values{}
	params.Set("openid.ns", steamOpenIDNamespace)
	params.Set("openid.mode", "id_res")
	params.Set("openid.claimed_id", claimedID)
	params.Set("openid.sig", "sig")
	return params
}

func TestLoginURL(t *testing.T) {
	svc := newTestSteamService("https://steamcommunity.com/openid/login", "", "")

	raw := svc.LoginURL("http://localhost:5173/adm")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "checkid_setup", query.Get("openid.mode"))
	assert.Equal(t, "http://localhost:5173/adm", query.Get("openid.return_to"))
	assert.Equal(t, "http://localhost:5173", query.Get("openid.realm"))
	assert.Equal(t, identifierSelect, query.Get("openid.identity"))
}

func TestVerifyCallbackValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		// The verification re-POST must override only the mode.
		assert.Equal(t, "check_authentication", r.PostForm.Get("openid.mode"))
		assert.Equal(t, "sig", r.PostForm.Get("openid.sig"))
		w.Write([]byte("ns:http://specs.openid.net/auth/2.0\nis_valid:true\n"))
	}))
	defer server.Close()

	svc := newTestSteamService(server.URL, "", "")
	steamID, err := svc.VerifyCallback(context.Background(),
		callbackParams("https://steamcommunity.com/openid/id/76561198995407853"))

	require.NoError(t, err)
	assert.Equal(t, "76561198995407853", steamID)
}

func TestVerifyCallbackInvalidAssertion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ns:http://specs.openid.net/auth/2.0\nis_valid:false\n"))
	}))
	defer server.Close()

	svc := newTestSteamService(server.URL, "", "")
	_, err := svc.VerifyCallback(context.Background(),
		callbackParams("https://steamcommunity.com/openid/id/76561198995407853"))

	assert.ErrorIs(t, err, utils.ErrSteamInvalidResponse)
}

func TestVerifyCallbackUnreachableProvider(t *testing.T) {
	svc := newTestSteamService("http://127.0.0.1:1", "", "")

	_, err := svc.VerifyCallback(context.Background(),
		callbackParams("https://steamcommunity.com/openid/id/76561198995407853"))

	assert.ErrorIs(t, err, utils.ErrSteamInvalidResponse)
}

func TestVerifyCallbackMalformedClaimedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("is_valid:true\n"))
	}))
	defer server.Close()

	svc := newTestSteamService(server.URL, "", "")

	for _, claimed := range []string{
		"https://steamcommunity.com/openid/id/abc",
		"https://steamcommunity.com/openid/id/123/extra",
		"https://steamcommunity.com/profile/123",
	} {
		_, err := svc.VerifyCallback(context.Background(), callbackParams(claimed))
		assert.ErrorIs(t, err, utils.ErrSteamIDNotFound, claimed)
	}
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ISteamUser/GetPlayerSummaries/v0002/", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "76561198995407853", r.URL.Query().Get("steamids"))
		w.Write([]byte(`{"response":{"players":[{"personaname":"gordon","avatarfull":"https://avatars.example/g.jpg"}]}}`))
	}))
	defer server.Close()

	svc := newTestSteamService("", server.URL, "secret")
	profile, err := svc.FetchProfile(context.Background(), "76561198995407853")

	require.NoError(t, err)
	assert.Equal(t, "gordon", profile.Username)
	assert.Equal(t, "https://avatars.example/g.jpg", profile.AvatarURL)
}

func TestFetchProfileEmptyPlayers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"players":[]}}`))
	}))
	defer server.Close()

	svc := newTestSteamService("", server.URL, "secret")
	_, err := svc.FetchProfile(context.Background(), "76561198995407853")

	assert.ErrorIs(t, err, utils.ErrSteamProfileFetch)
}

func TestFetchProfileRequiresAPIKey(t *testing.T) {
	svc := newTestSteamService("", "http://127.0.0.1:1", "")

	_, err := svc.FetchProfile(context.Background(), "76561198995407853")

	assert.ErrorIs(t, err, utils.ErrSteamProfileFetch)
}
