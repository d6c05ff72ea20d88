package domain

import "context"

// Dispatcher publishes a composed notification to its topic and returns an
// opaque delivery identifier. Failures come back as *DeliveryError; there is
// no local retry and no deduplication of sos ids at this layer.
type Dispatcher interface {
	Dispatch(ctx context.Context, p NotificationPayload) (string, error)
}

// DeliveryError wraps a transport failure from the push backend. Callers
// surface it as a 500-class response.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "notification delivery failed: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
