package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"homeinsight-valuation/internal/models"
	"homeinsight-valuation/pkg/logger"
	"homeinsight-valuation/pkg/metrics"
)

type predictResponse struct {
	Prediction *float64 `json:"prediction"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Predict requests a price prediction for the record. The request body
// carries exactly the ten HouseRecord fields. The returned Result is a
// failure on any transport error, non-2xx status, or a body whose
// prediction field is missing or non-numeric; it never raises. A numeric
// prediction is passed through without range validation.
func (c *Client) Predict(ctx context.Context, record *models.HouseRecord) Result {
	predictURL := c.baseURL + "/api/predict"

	payload, err := json.Marshal(record)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to encode predict request: error=%v", err)
		return c.fail(ReasonMalformed, fmt.Sprintf("failed to encode request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, predictURL, bytes.NewReader(payload))
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create predict request: url=%s, error=%v", predictURL, err)
		return c.fail(ReasonTransport, fmt.Sprintf("failed to create request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RemoteRequestDuration.WithLabelValues("predict").Observe(time.Since(start).Seconds())
	if err != nil {
		logger.GlobalLogger.Errorf("Predict request failed: url=%s, error=%v", predictURL, err)
		return c.fail(ReasonTransport, fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read predict response body: url=%s, status=%s, error=%v", predictURL, resp.Status, err)
		return c.fail(ReasonTransport, fmt.Sprintf("failed to read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := extractErrorMessage(body, resp.Status)
		logger.GlobalLogger.Errorf("Predict request returned %s: url=%s, detail=%s", resp.Status, predictURL, detail)
		return c.fail(ReasonHTTP, detail)
	}

	var predicted predictResponse
	if err := json.Unmarshal(body, &predicted); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode predict response: url=%s, body=%s, error=%v", predictURL, string(body), err)
		return c.fail(ReasonMalformed, fmt.Sprintf("failed to decode response: %v", err))
	}
	if predicted.Prediction == nil {
		logger.GlobalLogger.Errorf("Predict response missing prediction field: url=%s, body=%s", predictURL, string(body))
		return c.fail(ReasonMalformed, "response missing prediction field")
	}

	return success(*predicted.Prediction)
}

func (c *Client) fail(reason, detail string) Result {
	metrics.RemotePredictionFailuresTotal.WithLabelValues(reason).Inc()
	return failure(reason, detail)
}

// extractErrorMessage pulls a human-readable message out of an error body,
// checking the error and message fields the model service uses, falling
// back to the HTTP status line.
func extractErrorMessage(body []byte, status string) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return errResp.Error
		}
		if errResp.Message != "" {
			return errResp.Message
		}
	}
	return fmt.Sprintf("prediction service returned %s", status)
}
