package errors

import (
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	technicalMessage := err.Error()

	// Map specific error patterns to user-friendly errors
	switch {
	case strings.Contains(technicalMessage, "is required") || strings.Contains(technicalMessage, "must be"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidRecord,
			Code:             ErrCodeInvalidRecord,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "valuation history"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgHistoryUnavailable,
			Code:             ErrCodeHistoryUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             "INTERNAL_ERROR",
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
