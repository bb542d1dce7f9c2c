package errors

// User-friendly error messages
const (
	MsgInvalidRecord      = "Some house details are missing or out of range. Please check the form and try again."
	MsgServiceUnavailable = "We're unable to estimate a price right now. Please try again in a few minutes."
	MsgRateLimited        = "You're submitting too quickly! Please wait a moment and try again."
	MsgHistoryUnavailable = "Valuation history is unavailable right now. Please try again later."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
