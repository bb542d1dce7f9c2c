package prediction

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"homeinsight-valuation/internal/models"
	"homeinsight-valuation/pkg/logger"
	"homeinsight-valuation/pkg/metrics"
)

// CheckModelStatus queries whether the model service has a trained model.
// Any failure (unreachable host, non-2xx status, non-JSON body) yields the
// not-trained sentinel instead of an error; the cause is logged. The
// snapshot is never cached, so callers always see current state.
func (c *Client) CheckModelStatus(ctx context.Context) models.ModelStatus {
	notTrained := models.ModelStatus{Trained: false, ModelPath: nil}
	statusURL := c.baseURL + "/api/model/status"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create model status request: url=%s, error=%v", statusURL, err)
		return notTrained
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RemoteRequestDuration.WithLabelValues("status").Observe(time.Since(start).Seconds())
	if err != nil {
		logger.GlobalLogger.Errorf("Model status request failed: url=%s, error=%v", statusURL, err)
		return notTrained
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GlobalLogger.Errorf("Model status request returned %s: url=%s", resp.Status, statusURL)
		return notTrained
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read model status body: url=%s, error=%v", statusURL, err)
		return notTrained
	}

	var status models.ModelStatus
	if err := json.Unmarshal(body, &status); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode model status: url=%s, body=%s, error=%v", statusURL, string(body), err)
		return notTrained
	}

	return status
}

// CheckHealth reports whether the model service answered the status
// endpoint with a success code. The body is discarded.
func (c *Client) CheckHealth(ctx context.Context) bool {
	statusURL := c.baseURL + "/api/model/status"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create health check request: url=%s, error=%v", statusURL, err)
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Health check failed: url=%s, error=%v", statusURL, err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
