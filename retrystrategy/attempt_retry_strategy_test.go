package retrystrategy_test

import (
	"errors"

	"code.cloudfoundry.org/clock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	boshlog "github.com/omnihash/omnihash/logger"
	. "github.com/omnihash/omnihash/retrystrategy"
)

type attemptOutcome struct {
	retryable bool
	err       error
}

type scriptedRetryable struct {
	outcomes []attemptOutcome
	attempts int
}

func (r *scriptedRetryable) Attempt() (bool, error) {
	outcome := r.outcomes[r.attempts]
	r.attempts++
	return outcome.retryable, outcome.err
}

var _ = Describe("AttemptRetryStrategy", func() {
	var logger boshlog.Logger

	BeforeEach(func() {
		logger = boshlog.NewLogger(boshlog.LevelNone)
	})

	It("stops on the first success", func() {
		retryable := &scriptedRetryable{outcomes: []attemptOutcome{
			{retryable: false, err: nil},
		}}
		strategy := NewAttemptRetryStrategy(3, 0, retryable, clock.NewClock(), logger)

		Expect(strategy.Try()).To(Succeed())
		Expect(retryable.attempts).To(Equal(1))
	})

	It("retries retryable errors until one succeeds", func() {
		retryable := &scriptedRetryable{outcomes: []attemptOutcome{
			{retryable: true, err: errors.New("first")},
			{retryable: true, err: errors.New("second")},
			{retryable: false, err: nil},
		}}
		strategy := NewAttemptRetryStrategy(3, 0, retryable, clock.NewClock(), logger)

		Expect(strategy.Try()).To(Succeed())
		Expect(retryable.attempts).To(Equal(3))
	})

	It("gives up after the attempt limit and returns the last error", func() {
		retryable := &scriptedRetryable{outcomes: []attemptOutcome{
			{retryable: true, err: errors.New("first")},
			{retryable: true, err: errors.New("second")},
			{retryable: true, err: errors.New("third")},
		}}
		strategy := NewAttemptRetryStrategy(3, 0, retryable, clock.NewClock(), logger)

		err := strategy.Try()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(Equal("third"))
		Expect(retryable.attempts).To(Equal(3))
	})

	It("does not retry errors marked non-retryable", func() {
		retryable := &scriptedRetryable{outcomes: []attemptOutcome{
			{retryable: false, err: errors.New("fatal")},
		}}
		strategy := NewAttemptRetryStrategy(3, 0, retryable, clock.NewClock(), logger)

		err := strategy.Try()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(Equal("fatal"))
		Expect(retryable.attempts).To(Equal(1))
	})
})
