package client

import (
	"strings"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
	DefaultRetries = 2
	DefaultBackoff = 1 * time.Second
)

type OptionFunc func(o *Options)

type Options struct {
	// Name of the caller, sent as User-Agent and used for logging
	name string

	// BaseURL - full URL to the service including protocol
	baseURL string

	// pathPrefix - added between base URL and operation path
	pathPrefix string

	// Timeout - per attempt, if not set then default timeout is used
	timeout time.Duration

	// retries - extra attempts for idempotent reads
	retries *int

	// backoff - wait before retry n is n*backoff
	backoff time.Duration
}

func WithName(name string) OptionFunc {
	return func(o *Options) {
		o.name = name
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(o *Options) {
		o.baseURL = baseURL
	}
}

func WithPathPrefix(pathPrefix string) OptionFunc {
	return func(o *Options) {
		o.pathPrefix = pathPrefix
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(o *Options) {
		o.timeout = timeout
	}
}

func WithRetries(retries int) OptionFunc {
	return func(o *Options) {
		o.retries = &retries
	}
}

func WithBackoff(backoff time.Duration) OptionFunc {
	return func(o *Options) {
		o.backoff = backoff
	}
}

func NewOptions(optionFuncs ...OptionFunc) (*Options, error) {
	options := &Options{
		name: "chauffeur-hub-client",
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(options)
	}

	return options, nil
}

func (o *Options) Name() string {
	return o.name
}

func (o *Options) BaseURL() string {
	return strings.TrimRight(o.baseURL, "/") + o.pathPrefix
}

func (o *Options) Timeout() time.Duration {
	if o.timeout != 0 {
		return o.timeout
	}
	return DefaultTimeout
}

func (o *Options) Retries() int {
	if o.retries != nil && *o.retries >= 0 {
		return *o.retries
	}
	return DefaultRetries
}

func (o *Options) Backoff() time.Duration {
	if o.backoff != 0 {
		return o.backoff
	}
	return DefaultBackoff
}
