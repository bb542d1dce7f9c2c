package prediction

// Failure reasons attached to a failed Result. These also label the
// remote_prediction_failures_total metric.
const (
	ReasonTransport = "transport"
	ReasonHTTP      = "http_status"
	ReasonMalformed = "malformed_body"
)

// Result carries either a successful prediction or a structured failure
// reason. The client never returns Go errors from its public operations;
// every failure mode ends up here so callers can apply the fallback policy
// without error-handling boilerplate.
type Result struct {
	// Price is the predicted price. Only meaningful when OK() is true.
	// The value is taken from the model service as-is; its range is not
	// validated.
	Price float64
	// Reason classifies the failure (empty on success).
	Reason string
	// Detail is a human-readable description of the failure, for logs and
	// inspection only.
	Detail string
}

// OK reports whether the result carries a usable prediction.
func (r Result) OK() bool {
	return r.Reason == ""
}

func success(price float64) Result {
	return Result{Price: price}
}

func failure(reason, detail string) Result {
	return Result{Reason: reason, Detail: detail}
}
