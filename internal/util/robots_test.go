package util

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func robotsServer(t *testing.T, body string, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestRobotsChecker_Disallowed(t *testing.T) {
	srv, _ := robotsServer(t, "User-agent: *\nDisallow: /members/\n", http.StatusOK)
	rc := NewRobotsChecker(srv.Client(), "legisearch/0.1 (+test)", time.Minute, nil)

	allowed, _, err := rc.CanFetch(context.Background(), srv.URL+"/members/legislators.aspx")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, _, err = rc.CanFetch(context.Background(), srv.URL+"/about")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRobotsChecker_CrawlDelayAndCache(t *testing.T) {
	srv, hits := robotsServer(t, "User-agent: legisearch\nCrawl-delay: 2\nAllow: /\n", http.StatusOK)
	rc := NewRobotsChecker(srv.Client(), "legisearch/0.1", time.Minute, nil)

	allowed, delay, err := rc.CanFetch(context.Background(), srv.URL+"/members")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 2*time.Second, delay)

	_, _, err = rc.CanFetch(context.Background(), srv.URL+"/other")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "robots.txt should be fetched once per host")
}

func TestRobotsChecker_MissingRobots(t *testing.T) {
	srv, _ := robotsServer(t, "", http.StatusNotFound)
	rc := NewRobotsChecker(srv.Client(), "legisearch", time.Minute, nil)

	allowed, _, err := rc.CanFetch(context.Background(), srv.URL+"/members")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRobotsChecker_Unreachable(t *testing.T) {
	rc := NewRobotsChecker(&http.Client{Timeout: time.Second}, "legisearch", time.Minute, nil)

	allowed, _, err := rc.CanFetch(context.Background(), "http://127.0.0.1:1/members")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNormalizeUserAgent(t *testing.T) {
	assert.Equal(t, "legisearch", NormalizeUserAgent("legisearch/0.1 (+https://example.com)"))
	assert.Equal(t, "curl", NormalizeUserAgent("curl"))
	assert.Equal(t, "", NormalizeUserAgent(""))
}

func TestRobotsChecker_WaitsOnHostLimiter(t *testing.T) {
	srv, hits := robotsServer(t, "User-agent: *\nAllow: /\n", http.StatusOK)
	limiter := NewHostLimiter(2, 1)
	require.True(t, limiter.Allow(srv.URL+"/"), "first token is free")

	rc := NewRobotsChecker(srv.Client(), "legisearch", time.Minute, limiter)

	start := time.Now()
	allowed, _, err := rc.CanFetch(context.Background(), srv.URL+"/members")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int32(1), hits.Load())
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
}
