package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/palaver-chat/palaver/palaverjson"
	"github.com/rs/zerolog"
)

const (
	APIVersion      = "v10"
	EndpointDiscord = "https://discord.com/api"
	UserAgent       = "Palaver (github.com/palaver-chat/palaver)"
)

type RESTInterface interface {
	// Fetch constructs a request. It will return a response body along with any errors.
	// Errors can include ErrUnauthorized and *RestError.
	Fetch(s *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error)
	FetchBJ(s *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error
	FetchJJ(s *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error
}

// IdentityProvider exposes a synchronized view of the account the session is
// authenticated as. Operations restricted by account type consult it before
// issuing a request; when nil, restrictions are not enforced locally and the
// remote service is the source of truth.
type IdentityProvider interface {
	CurrentUser() (User, bool)
}

// Session contains the context for the rest interface.
type Session struct {
	Context   context.Context
	Interface RESTInterface
	Identity  IdentityProvider
	Token     string
}

func NewSession(ctx context.Context, token string, httpInterface RESTInterface) *Session {
	return &Session{
		Context:   ctx,
		Token:     token,
		Interface: httpInterface,
	}
}

// WithIdentity attaches an identity provider, enabling local fast-fail of
// account-type restricted operations.
func (s *Session) WithIdentity(identity IdentityProvider) *Session {
	s.Identity = identity

	return s
}

// isBot reports whether the session's identity is known to be a bot account.
func (s *Session) isBot() bool {
	if s.Identity == nil {
		return false
	}

	user, ok := s.Identity.CurrentUser()

	return ok && user.Bot
}

// BaseInterface is the default HTTP Interface and simply handles routing to
// the API host. Careful, this does not handle rate limiting.
type BaseInterface struct {
	HTTP       *http.Client
	Logger     zerolog.Logger
	APIVersion string
	URLHost    string
	URLScheme  string
	UserAgent  string

	Debug bool
}

func NewBaseInterface() RESTInterface {
	return NewInterface(&http.Client{
		Timeout: 20 * time.Second,
	}, EndpointDiscord, APIVersion, UserAgent)
}

func NewInterface(httpClient *http.Client, endpoint, version, useragent string) RESTInterface {
	u, _ := url.Parse(endpoint)

	return &BaseInterface{
		HTTP:       httpClient,
		Logger:     zerolog.Nop(),
		APIVersion: version,
		URLHost:    u.Host,
		URLScheme:  u.Scheme,
		UserAgent:  useragent,
	}
}

func (bi *BaseInterface) Fetch(session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(session.Context, method, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}

	req.URL.Host = bi.URLHost
	req.URL.Scheme = bi.URLScheme

	if strings.Contains(endpoint, "?") {
		req.URL.RawQuery = strings.SplitN(endpoint, "?", 2)[1]
		endpoint = strings.SplitN(endpoint, "?", 2)[0]
	}

	if bi.APIVersion != "" && !strings.HasPrefix(req.URL.Path, "/api") {
		req.URL.Path = "/api/" + bi.APIVersion + endpoint
	}

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if body != nil && len(req.Header.Get("Content-Type")) == 0 {
		req.Header.Set("Content-Type", contentType)
	}

	if bi.UserAgent != "" {
		req.Header.Set("User-Agent", bi.UserAgent)
	}

	if session.Token != "" {
		req.Header.Set("Authorization", session.Token)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := bi.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	defer resp.Body.Close()

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if bi.Debug {
		bi.Logger.Debug().
			Str("method", method).
			Str("url", req.URL.String()).
			Int("status", resp.StatusCode).
			Bytes("body", body).
			Bytes("response", response).
			Msg("Fetched endpoint")
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusCreated:
	case http.StatusNoContent:
	case http.StatusUnauthorized:
		return response, ErrUnauthorized
	default:
		return response, NewRestError(req, resp, response)
	}

	return response, nil
}

func (bi *BaseInterface) FetchBJ(session *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	resp, err := bi.Fetch(session, method, endpoint, contentType, body, headers)
	if err != nil {
		return err
	}

	if response != nil {
		err = palaverjson.Unmarshal(resp, response)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func (bi *BaseInterface) FetchJJ(session *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	var body []byte
	var err error

	if payload != nil {
		body, err = palaverjson.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
	} else {
		body = make([]byte, 0)
	}

	return bi.FetchBJ(session, method, endpoint, "application/json", body, headers, response)
}
