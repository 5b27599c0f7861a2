package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/M0nkiiii/Screentime-Management/ddd/domain/service"
	"github.com/M0nkiiii/Screentime-Management/pkg/config"
	"github.com/M0nkiiii/Screentime-Management/pkg/errno"
)

type predictRequest struct {
	UserUUID   string  `json:"user_uuid"`
	DailyUsage []int64 `json:"daily_usage"`
}

type predictResponse struct {
	Recommendation string `json:"recommendation"`
}

// Client calls the external prediction service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a predictor from the prediction config section.
func NewClient(cfg config.PredictionConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

var _ service.Predictor = (*Client)(nil)

// Predict posts the user's recent daily usage and returns the
// recommendation string verbatim.
func (c *Client) Predict(ctx context.Context, userUUID string, recentDailyMinutes []int64) (string, error) {
	body, err := json.Marshal(predictRequest{
		UserUUID:   userUUID,
		DailyUsage: recentDailyMinutes,
	})
	if err != nil {
		return "", errno.NewSimpleBizError(errno.ErrPrediction, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return "", errno.NewSimpleBizError(errno.ErrPrediction, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errno.NewSimpleBizError(errno.ErrPrediction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for the logs; clients only ever see
		// the generic prediction error.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", errno.NewSimpleBizError(errno.ErrPrediction,
			fmt.Errorf("prediction service returned %d: %s", resp.StatusCode, snippet))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errno.NewSimpleBizError(errno.ErrPrediction, err)
	}
	return out.Recommendation, nil
}
