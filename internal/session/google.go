package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/gatherhq/gather/internal/errors"
)

// googleScopes covers the identity claims the backend reads from the token.
var googleScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// GoogleAccessToken runs the interactive authorization-code flow: it prints
// the consent URL, reads the pasted code, and exchanges it for an access
// token. The caller then trades that token for backend session tokens via
// Manager.LoginWithGoogle.
func GoogleAccessToken(ctx context.Context, clientID, clientSecret string, in io.Reader, out io.Writer) (string, error) {
	if clientID == "" || clientSecret == "" {
		return "", errors.New(errors.ErrCodeOAuthFailed, "Google OAuth is not configured").
			WithSuggestion("Set GATHER_GOOGLE_CLIENT_ID and GATHER_GOOGLE_CLIENT_SECRET")
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
		Scopes:       googleScopes,
		Endpoint:     google.Endpoint,
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Go to the following link in your browser, then paste the authorization code:\n%v\n\n", authURL)
	fmt.Fprint(out, "Enter authorization code: ")

	reader := bufio.NewReader(in)
	code, err := reader.ReadString('\n')
	if err != nil && code == "" {
		return "", errors.Wrap(errors.ErrCodeOAuthFailed, "could not read authorization code", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.New(errors.ErrCodeOAuthFailed, "no authorization code entered")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeOAuthFailed, "token exchange failed", err)
	}

	return token.AccessToken, nil
}
