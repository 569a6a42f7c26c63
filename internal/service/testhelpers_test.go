package service

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/practice-evaluator/internal/model"
)

// fakeProvider counts every request that reaches it.
type fakeProvider struct {
	server *httptest.Server
	hits   atomic.Int32
}

func newFakeProvider(t *testing.T, handler http.HandlerFunc) *fakeProvider {
	t.Helper()
	fp := &fakeProvider{}
	fp.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fp.hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(fp.server.Close)
	return fp
}

func (fp *fakeProvider) Hits() int {
	return int(fp.hits.Load())
}

// dropConnection closes the connection without writing a response.
func dropConnection(w http.ResponseWriter, _ *http.Request) {
	hj, ok := w.(http.Hijacker)
	if !ok {
		panic("response writer cannot be hijacked")
	}
	conn, _, err := hj.Hijack()
	if err != nil {
		panic(err)
	}
	_ = conn.Close()
}

func readAloudRequest(t *testing.T) model.EvaluationRequest {
	t.Helper()
	req, err := model.NewEvaluationRequest(
		"Read Aloud",
		"The development of sustainable cities...",
		"The development of sustainable cities is a priority...",
		model.ExamPTE,
	)
	require.NoError(t, err)
	return req
}
