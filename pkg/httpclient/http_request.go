package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"

	"github.com/communitycal/events-api/pkg/tracer"
)

// Request struct
type Request struct {
	client           *httpclient.Client
	minHTTPErrorCode int
}

// HTTPRequest interface
type HTTPRequest interface {
	Do(ctx context.Context, method, url string, reqBody []byte, headers map[string]string) ([]byte, error)
}

// NewHTTPRequest function, client with retrier and constant backoff
func NewHTTPRequest(retries int, sleepBetweenRetry time.Duration, minHTTPErrorCode int) HTTPRequest {
	maximumJitterInterval := 5 * time.Millisecond
	backoff := heimdall.NewConstantBackoff(sleepBetweenRetry, maximumJitterInterval)
	retrier := heimdall.NewRetrier(backoff)
	timeout := 10000 * time.Millisecond

	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(timeout),
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(retries),
	)

	if minHTTPErrorCode <= 0 {
		minHTTPErrorCode = http.StatusBadRequest
	}

	return &Request{
		client:           client,
		minHTTPErrorCode: minHTTPErrorCode,
	}
}

// Do function, for http client call
func (request *Request) Do(ctx context.Context, method, url string, requestBody []byte, headers map[string]string) (respBody []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}

	trace := tracer.StartTrace(ctx, fmt.Sprintf("HTTP Request: %s %s%s", method, req.URL.Host, req.URL.Path))
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	tracer.InjectHTTPHeader(trace.Context(), req)
	trace.SetTag("http.headers", req.Header)
	trace.SetTag("http.method", req.Method)
	trace.SetTag("http.url", req.URL.String())
	if requestBody != nil {
		trace.SetTag("request.body", string(requestBody))
	}

	r, err := request.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()

	respBody, err = ioutil.ReadAll(r.Body)

	trace.SetTag("response.body", string(respBody))
	trace.SetTag("response.code", r.StatusCode)
	trace.SetTag("response.status", r.Status)

	if r.StatusCode >= request.minHTTPErrorCode {
		err = errors.New(r.Status)
		var resp map[string]string
		json.Unmarshal(respBody, &resp)
		if resp["error"] != "" {
			err = errors.New(resp["error"])
		}
		return respBody, err
	}

	return respBody, err
}
