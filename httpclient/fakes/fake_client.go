package fakes

import (
	"io"
	"net/http"
	"strings"
)

type FakeClient struct {
	StatusCode int
	Error      error
	CallCount  int
	Requests   []*http.Request

	message string
}

func NewFakeClient() *FakeClient {
	return &FakeClient{StatusCode: 200}
}

func (c *FakeClient) SetMessage(message string) {
	c.message = message
}

func (c *FakeClient) Do(req *http.Request) (*http.Response, error) {
	c.CallCount++
	c.Requests = append(c.Requests, req)

	if c.Error != nil {
		return nil, c.Error
	}

	return &http.Response{
		Request:    req,
		StatusCode: c.StatusCode,
		Body:       io.NopCloser(strings.NewReader(c.message)),
	}, nil
}
