package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type stubRest struct {
	err error
}

func (s *stubRest) Fetch(_ *Session, _, _, _ string, _ []byte, _ http.Header) ([]byte, error) {
	return nil, s.err
}

func (s *stubRest) FetchBJ(_ *Session, _, _, _ string, _ []byte, _ http.Header, _ interface{}) error {
	return s.err
}

func (s *stubRest) FetchJJ(_ *Session, _, _ string, _ interface{}, _ http.Header, _ interface{}) error {
	return s.err
}

func TestInstrumentedInterfaceCountsRequests(t *testing.T) {
	t.Parallel()

	stub := &stubRest{}
	instrumented := NewInstrumentedInterface(stub, prometheus.NewRegistry())
	session := NewSession(context.TODO(), "", instrumented)

	_, err := instrumented.Fetch(session, http.MethodGet, "/channels/1", "", nil, nil)
	assert.NoError(t, err)

	err = instrumented.FetchJJ(session, http.MethodPost, "/channels/1/messages", nil, nil, nil)
	assert.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(instrumented.requestCount.WithLabelValues(http.MethodGet)))
	assert.Equal(t, 1.0, testutil.ToFloat64(instrumented.requestCount.WithLabelValues(http.MethodPost)))
	assert.Equal(t, 0.0, testutil.ToFloat64(instrumented.errorCount.WithLabelValues(http.MethodGet)))
}

func TestInstrumentedInterfaceCountsErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	stub := &stubRest{err: boom}
	instrumented := NewInstrumentedInterface(stub, prometheus.NewRegistry())
	session := NewSession(context.TODO(), "", instrumented)

	err := instrumented.FetchBJ(session, http.MethodDelete, "/channels/1", "", nil, nil, nil)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 1.0, testutil.ToFloat64(instrumented.requestCount.WithLabelValues(http.MethodDelete)))
	assert.Equal(t, 1.0, testutil.ToFloat64(instrumented.errorCount.WithLabelValues(http.MethodDelete)))
}
