package prediction

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"homeinsight-valuation/internal/models"
	"homeinsight-valuation/pkg/logger"
)

// ListNeighborhoods fetches the neighborhood names known to the model
// service. Follows the client's soft-failure contract: any failure is
// logged and yields a nil slice so the caller can fall back to the local
// table.
func (c *Client) ListNeighborhoods(ctx context.Context) []string {
	listURL := c.baseURL + "/api/neighborhoods"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create neighborhoods request: url=%s, error=%v", listURL, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Neighborhoods request failed: url=%s, error=%v", listURL, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GlobalLogger.Errorf("Neighborhoods request returned %s: url=%s", resp.Status, listURL)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read neighborhoods body: url=%s, error=%v", listURL, err)
		return nil
	}

	var listResp models.NeighborhoodsResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode neighborhoods response: url=%s, body=%s, error=%v", listURL, string(body), err)
		return nil
	}

	return listResp.Neighborhoods
}
