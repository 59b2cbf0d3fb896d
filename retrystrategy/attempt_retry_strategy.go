package retrystrategy

import (
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/jpillora/backoff"

	boshlog "github.com/omnihash/omnihash/logger"
)

const attemptRetryStrategyLogTag = "attemptRetryStrategy"

type Retryable interface {
	// Attempt returns whether a failed attempt may be retried.
	Attempt() (bool, error)
}

type RetryStrategy interface {
	Try() error
}

type attemptRetryStrategy struct {
	maxAttempts int
	delay       *backoff.Backoff
	timeService clock.Clock
	retryable   Retryable
	logger      boshlog.Logger
}

func NewAttemptRetryStrategy(
	maxAttempts int,
	retryDelay time.Duration,
	retryable Retryable,
	timeService clock.Clock,
	logger boshlog.Logger,
) RetryStrategy {
	return &attemptRetryStrategy{
		maxAttempts: maxAttempts,
		delay: &backoff.Backoff{
			Min:    retryDelay,
			Max:    8 * retryDelay,
			Factor: 2,
		},
		timeService: timeService,
		retryable:   retryable,
		logger:      logger,
	}
}

func (s *attemptRetryStrategy) Try() error {
	var err error
	var isRetryable bool

	for i := 0; i < s.maxAttempts; i++ {
		s.logger.Debug(attemptRetryStrategyLogTag, "Making attempt #%d for %T", i, s.retryable)

		isRetryable, err = s.retryable.Attempt()
		if err == nil || !isRetryable {
			return err
		}

		if i == s.maxAttempts-1 {
			break
		}

		s.timeService.Sleep(s.delay.Duration())
	}

	return err
}
