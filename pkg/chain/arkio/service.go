package arkio

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
	"github.com/orbit-wallet/wallet-daemon/pkg/circuitbreaker"
	"github.com/orbit-wallet/wallet-daemon/pkg/httputil"
)

const requestsPerSecond = 10

type arkio struct {
	apiURL  string
	breaker *gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
}

// NewService returns a new ark REST API client as a chain.Client interface.
func NewService(apiURL string) (chain.Client, error) {
	service := &arkio{
		apiURL:  apiURL,
		breaker: circuitbreaker.NewCircuitBreaker("arkio"),
		limiter: ratelimit.New(requestsPerSecond),
	}

	if err := service.healthCheck(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return service, nil
}

func (a *arkio) healthCheck() error {
	status, resp, err := a.makeRequest("GET", fmt.Sprintf("%s/api/node/status", a.apiURL), "", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.New(resp)
	}
	return nil
}

type httpResult struct {
	status int
	body   string
}

// makeRequest performs an HTTP call honoring the client-wide rate limit.
// Only transport-level errors count as failures for the circuit breaker;
// HTTP error statuses are returned to the caller as-is since a 404 on a
// wallet lookup is a regular outcome.
func (a *arkio) makeRequest(method, url, body string, headers map[string]string) (int, string, error) {
	a.limiter.Take()

	res, err := a.breaker.Execute(func() (interface{}, error) {
		status, resp, err := httputil.NewHTTPRequest(method, url, body, headers)
		if err != nil {
			return nil, err
		}
		return httpResult{status, resp}, nil
	})
	if err != nil {
		return 0, "", err
	}

	result := res.(httpResult)
	return result.status, result.body, nil
}
