// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/harshanm65/fetchx/fault"
	"github.com/harshanm65/fetchx/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

func TestClient(t *testing.T) {
	t.Run("happy path", testClientHappyPath)
	t.Run("attempt timeout", testClientTimeout)
	t.Run("network failure", testClientNetworkFailure)
	t.Run("read body error", testClientBodyError)
	t.Run("invalid input", testClientInvalidInput)
	t.Run("concurrent", testClientConcurrent)
	t.Run("close idle connections", testClientCloseIdleConnections)
}

// echoHandler echoes the request body (or "hello" for an empty body)
// and sleeps first when the request carries a delay query parameter.
func echoHandler(w http.ResponseWriter, r *http.Request) {
	if d := r.URL.Query().Get("delay"); d != "" {
		delay, err := time.ParseDuration(d)
		if err != nil {
			w.WriteHeader(400)
			return
		}
		time.Sleep(delay)
	}

	b, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		w.WriteHeader(400)
		return
	}

	w.Header().Set("X-Echo-Method", r.Method)
	if len(b) == 0 {
		b = []byte("hello")
	}
	_, _ = w.Write(b)
}

func newTestClient() (*Client, *transport.Config) {
	cfg := &transport.Config{}
	cfg.EnableMultiplexed()
	return &Client{Transport: cfg}, cfg
}

func testClientHappyPath(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()
	cl, cfg := newTestClient()
	defer cfg.CloseIdleConnections()

	t.Run("Fetch", func(t *testing.T) {
		res, err := cl.Fetch(server.URL, time.Minute)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 200, res.StatusCode())
		assert.Equal(t, []byte("hello"), res.Body)
		assert.Equal(t, "GET", res.Header().Get("X-Echo-Method"))
		require.NotNil(t, res.Request)
		_, hasDeadline := res.Request.Context().Deadline()
		assert.True(t, hasDeadline)
	})
	t.Run("FetchContext", func(t *testing.T) {
		res, err := cl.FetchContext(context.Background(), server.URL, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), res.Body)
	})
	t.Run("Head", func(t *testing.T) {
		res, err := cl.Head(server.URL, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode())
		assert.Equal(t, "HEAD", res.Header().Get("X-Echo-Method"))
		assert.Empty(t, res.Body)
	})
	t.Run("Post", func(t *testing.T) {
		res, err := cl.Post(server.URL, "text/plain", "ham and eggs", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, []byte("ham and eggs"), res.Body)
		assert.Equal(t, "text/plain", res.Request.Header.Get("Content-Type"))
	})
	t.Run("sequential reuse", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			res, err := cl.Fetch(server.URL, time.Minute)
			require.NoError(t, err)
			assert.Equal(t, 200, res.StatusCode())
		}
	})
}

func testClientTimeout(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()
	cl, cfg := newTestClient()
	defer cfg.CloseIdleConnections()

	// Repeated calls double as a leak check: every expired attempt
	// must release its timer and tear down its connection.
	for i := 0; i < 3; i++ {
		start := time.Now()
		res, err := cl.Fetch(server.URL+"?delay=1s", 50*time.Millisecond)
		elapsed := time.Since(start)

		assert.Nil(t, res)
		var fe *fault.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fault.Timeout, fe.Category)
		assert.Equal(t, 50*time.Millisecond, fe.Elapsed)
		assert.True(t, fe.Timeout())
		assert.Contains(t, err.Error(), "50ms")
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Less(t, elapsed, time.Second)
	}
}

func testClientNetworkFailure(t *testing.T) {
	t.Parallel()
	simulated := &url.Error{Op: "Get", URL: "https://api.example.com/v1", Err: syscall.ECONNRESET}
	mockDoer := newMockHTTPDoer(t)
	mockDoer.On("Do", mock.Anything).Return(nil, simulated).Once()
	cl := &Client{HTTPDoer: mockDoer}

	res, err := cl.Fetch("https://api.example.com/v1", time.Second)

	mockDoer.AssertExpectations(t)
	assert.Nil(t, res)
	var fe *fault.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fault.Network, fe.Category)
	assert.Equal(t, "ECONNRESET", fe.Code)
	assert.Same(t, simulated, fe.Unwrap())
	assert.True(t, errors.Is(err, syscall.ECONNRESET))
	assert.Contains(t, err.Error(), simulated.Error())
}

func testClientBodyError(t *testing.T) {
	t.Parallel()
	mockDoer := newMockHTTPDoer(t)
	mockDoer.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(errReader{syscall.ECONNRESET}),
	}, nil).Once()
	cl := &Client{HTTPDoer: mockDoer}

	res, err := cl.Fetch("https://api.example.com/v1", time.Second)

	mockDoer.AssertExpectations(t)
	assert.Nil(t, res)
	var fe *fault.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fault.Network, fe.Category)
	assert.Equal(t, "ECONNRESET", fe.Code)
}

func testClientInvalidInput(t *testing.T) {
	t.Parallel()
	cl := &Client{HTTPDoer: newMockHTTPDoer(t)}

	t.Run("bad URL", func(t *testing.T) {
		res, err := cl.Fetch("://not-a-url", time.Second)
		assert.Nil(t, res)
		var fe *fault.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fault.Other, fe.Category)
		assert.Error(t, fe.Unwrap())
	})
	t.Run("bad body type", func(t *testing.T) {
		res, err := cl.Post("https://api.example.com", "text/plain", 123, time.Second)
		assert.Nil(t, res)
		var fe *fault.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fault.Other, fe.Category)
		assert.EqualError(t, fe.Unwrap(), badBodyTypeMsg)
	})
}

func testClientConcurrent(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()
	cl, cfg := newTestClient()
	defer cfg.CloseIdleConnections()

	delays := []string{"10ms", "100ms"}
	results := make([]*Result, len(delays))
	errs := make([]error, len(delays))
	var wg sync.WaitGroup
	for i, delay := range delays {
		wg.Add(1)
		go func(i int, delay string) {
			defer wg.Done()
			results[i], errs[i] = cl.Fetch(server.URL+"?delay="+delay, 200*time.Millisecond)
		}(i, delay)
	}
	wg.Wait()

	for i := range delays {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i])
		assert.Equal(t, 200, results[i].StatusCode())
		assert.Equal(t, []byte("hello"), results[i].Body)
	}
}

func testClientCloseIdleConnections(t *testing.T) {
	t.Parallel()
	t.Run("doer with CloseIdleConnections", func(t *testing.T) {
		mockDoer := newMockHTTPDoerWithCloseIdleConnections(t)
		mockDoer.On("CloseIdleConnections").Once()
		cl := &Client{HTTPDoer: mockDoer}
		cl.CloseIdleConnections()
		mockDoer.AssertExpectations(t)
	})
	t.Run("doer without CloseIdleConnections", func(t *testing.T) {
		cl := &Client{HTTPDoer: newMockHTTPDoer(t)}
		cl.CloseIdleConnections()
	})
	t.Run("transport handle", func(t *testing.T) {
		cl, _ := newTestClient()
		cl.CloseIdleConnections()
	})
}

func TestResultZeroValue(t *testing.T) {
	r := &Result{}
	assert.Equal(t, 0, r.StatusCode())
	assert.Nil(t, r.Header())
}

type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}

type mockHTTPDoer struct {
	mock.Mock
}

func newMockHTTPDoer(t *testing.T) *mockHTTPDoer {
	m := &mockHTTPDoer{}
	m.Test(t)
	return m
}

func (m *mockHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	err := args.Error(1)
	if resp, ok := args.Get(0).(*http.Response); ok {
		return resp, err
	}
	return nil, err
}

type mockHTTPDoerWithCloseIdleConnections struct {
	mockHTTPDoer
}

func newMockHTTPDoerWithCloseIdleConnections(t *testing.T) *mockHTTPDoerWithCloseIdleConnections {
	m := &mockHTTPDoerWithCloseIdleConnections{}
	m.Test(t)
	return m
}

func (m *mockHTTPDoerWithCloseIdleConnections) CloseIdleConnections() {
	m.Called()
}
