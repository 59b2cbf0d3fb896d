package httpclient

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"

	boshlog "github.com/omnihash/omnihash/logger"
	boshretry "github.com/omnihash/omnihash/retrystrategy"
)

type RetryClient interface {
	Client
	GetWithHeaders(url string, headers map[string]string) (*http.Response, error)
	Get(url string) (*http.Response, error)
}

type retryClient struct {
	delegate    Client
	maxAttempts uint
	retryDelay  time.Duration
	timeService clock.Clock
	logger      boshlog.Logger
}

// NewRetryClient retries transport errors and retryable 5xx responses
// of safe methods, with backed-off delays between attempts.
func NewRetryClient(
	delegate Client,
	maxAttempts uint,
	retryDelay time.Duration,
	timeService clock.Clock,
	logger boshlog.Logger,
) RetryClient {
	return &retryClient{
		delegate:    delegate,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		timeService: timeService,
		logger:      logger,
	}
}

func NewDefaultRetryClient(maxAttempts uint, retryDelay time.Duration, logger boshlog.Logger) RetryClient {
	return NewRetryClient(DefaultClient, maxAttempts, retryDelay, clock.NewClock(), logger)
}

func (r *retryClient) Do(req *http.Request) (*http.Response, error) {
	requestRetryable := newRequestRetryable(req, r.delegate, r.logger)
	retryStrategy := boshretry.NewAttemptRetryStrategy(int(r.maxAttempts), r.retryDelay, requestRetryable, r.timeService, r.logger)
	err := retryStrategy.Try()

	return requestRetryable.Response(), err
}

func (r *retryClient) GetWithHeaders(url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	return r.Do(req)
}

func (r *retryClient) Get(url string) (*http.Response, error) {
	return r.GetWithHeaders(url, map[string]string{})
}
