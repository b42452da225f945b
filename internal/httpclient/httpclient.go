package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// New builds the outbound client used for Gemini calls. A zero timeout leaves
// the request deadline to the caller's context. A positive pingInterval turns
// on HTTP/2 health checks so dead connections are dropped from the pool.
func New(timeout, pingInterval time.Duration) (*http.Client, error) {
	t1 := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if pingInterval > 0 {
		// keeps the proxy settings of t1
		t2, err := http2.ConfigureTransports(t1)
		if err != nil {
			return nil, fmt.Errorf("failed to configure http2 transport: %w", err)
		}
		t2.ReadIdleTimeout = pingInterval
		t2.PingTimeout = pingInterval / 2
	}
	return &http.Client{
		Transport: t1,
		Timeout:   timeout,
	}, nil
}
