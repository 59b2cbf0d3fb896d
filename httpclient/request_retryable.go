package httpclient

import (
	"io"
	"net/http"

	bosherr "github.com/omnihash/omnihash/errors"
	boshlog "github.com/omnihash/omnihash/logger"
)

const requestRetryableLogTag = "requestRetryable"

type requestRetryable struct {
	req      *http.Request
	delegate Client
	attempt  int
	response *http.Response
	logger   boshlog.Logger
}

func newRequestRetryable(req *http.Request, delegate Client, logger boshlog.Logger) *requestRetryable {
	return &requestRetryable{
		req:      req,
		delegate: delegate,
		logger:   logger,
	}
}

func (r *requestRetryable) Attempt() (bool, error) {
	// A body left over from the previous attempt keeps its connection
	// checked out until drained.
	if r.response != nil {
		io.Copy(io.Discard, r.response.Body) //nolint:errcheck
		r.response.Body.Close()              //nolint:errcheck
	}

	r.attempt++

	var err error
	r.response, err = r.delegate.Do(r.req)
	if err != nil {
		return true, bosherr.WrapErrorf(err, "Performing request attempt #%d", r.attempt)
	}

	if r.wasRetryableResponse() {
		r.logger.Debug(requestRetryableLogTag, "Attempt #%d returned status %d, retrying", r.attempt, r.response.StatusCode)
		return true, bosherr.Errorf("Request failed with status %d", r.response.StatusCode)
	}

	return false, nil
}

func (r *requestRetryable) Response() *http.Response {
	return r.response
}

func (r *requestRetryable) wasRetryableResponse() bool {
	isSafeMethod := r.req.Method == "GET" || r.req.Method == "HEAD"

	return isSafeMethod &&
		(r.response.StatusCode == http.StatusGatewayTimeout ||
			r.response.StatusCode == http.StatusServiceUnavailable)
}
