package discord_test

import (
	"context"
	"net/http"

	"github.com/palaver-chat/palaver/discord"
	"github.com/palaver-chat/palaver/palaverjson"
	"github.com/palaver-chat/palaver/pkg/lockcell"
)

func lockcellUser(user discord.User) *lockcell.Cell[discord.User] {
	return lockcell.New(user)
}

// recordingRest is a remote-service double that records every request and
// replies with a canned body.
type recordingRest struct {
	err      error
	respBody []byte

	methods   []string
	endpoints []string

	calls int
}

func (r *recordingRest) record(method, endpoint string) {
	r.calls++
	r.methods = append(r.methods, method)
	r.endpoints = append(r.endpoints, endpoint)
}

func (r *recordingRest) Fetch(_ *discord.Session, method, endpoint, _ string, _ []byte, _ http.Header) ([]byte, error) {
	r.record(method, endpoint)

	return r.respBody, r.err
}

func (r *recordingRest) FetchBJ(_ *discord.Session, method, endpoint, _ string, _ []byte, _ http.Header, response interface{}) error {
	r.record(method, endpoint)

	if r.err != nil {
		return r.err
	}

	if response != nil && r.respBody != nil {
		return palaverjson.Unmarshal(r.respBody, response)
	}

	return nil
}

func (r *recordingRest) FetchJJ(_ *discord.Session, method, endpoint string, _ interface{}, _ http.Header, response interface{}) error {
	r.record(method, endpoint)

	if r.err != nil {
		return r.err
	}

	if response != nil && r.respBody != nil {
		return palaverjson.Unmarshal(r.respBody, response)
	}

	return nil
}

// staticIdentity is an IdentityProvider double with a fixed current user.
type staticIdentity struct {
	user discord.User
}

func (i staticIdentity) CurrentUser() (discord.User, bool) {
	return i.user, true
}

func newTestSession(rest *recordingRest) *discord.Session {
	return discord.NewSession(context.TODO(), "Bot token", rest)
}
