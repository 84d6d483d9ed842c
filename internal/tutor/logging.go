package tutor

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// loggingProvider records every request to the debug log. Failures to
// log never fail the request.
type loggingProvider struct {
	inner Provider
	log   *logrus.Entry
}

func withLogging(p Provider, log *logrus.Entry) Provider {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &loggingProvider{inner: p, log: log}
}

func (l *loggingProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	start := time.Now()
	resp, err := l.inner.Complete(ctx, p)

	fields := logrus.Fields{
		"model":      l.inner.Model(),
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if resp != nil {
		fields["input_tokens"] = resp.InputTokens
		fields["output_tokens"] = resp.OutputTokens
	}

	if err != nil {
		l.log.WithFields(fields).WithError(err).Debug("tutor request failed")
	} else {
		l.log.WithFields(fields).Debug("tutor request")
	}
	return resp, err
}

func (l *loggingProvider) Model() string {
	return l.inner.Model()
}
