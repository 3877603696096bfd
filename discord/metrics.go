package discord

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedInterface decorates a RESTInterface with prometheus request
// and error counters. It is optional; wrap the interface passed to
// NewSession to enable it.
type InstrumentedInterface struct {
	Inner RESTInterface

	requestCount *prometheus.CounterVec
	errorCount   *prometheus.CounterVec
}

func NewInstrumentedInterface(inner RESTInterface, registerer prometheus.Registerer) *InstrumentedInterface {
	ii := &InstrumentedInterface{
		Inner: inner,
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "palaver_rest_requests_total",
			Help: "Total REST requests issued, by method.",
		}, []string{"method"}),
		errorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "palaver_rest_request_errors_total",
			Help: "Total REST requests that returned an error, by method.",
		}, []string{"method"}),
	}

	registerer.MustRegister(ii.requestCount, ii.errorCount)

	return ii
}

func (ii *InstrumentedInterface) observe(method string, err error) {
	ii.requestCount.WithLabelValues(method).Inc()

	if err != nil {
		ii.errorCount.WithLabelValues(method).Inc()
	}
}

func (ii *InstrumentedInterface) Fetch(s *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	response, err := ii.Inner.Fetch(s, method, endpoint, contentType, body, headers)
	ii.observe(method, err)

	return response, err
}

func (ii *InstrumentedInterface) FetchBJ(s *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	err := ii.Inner.FetchBJ(s, method, endpoint, contentType, body, headers, response)
	ii.observe(method, err)

	return err
}

func (ii *InstrumentedInterface) FetchJJ(s *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	err := ii.Inner.FetchJJ(s, method, endpoint, payload, headers, response)
	ii.observe(method, err)

	return err
}
