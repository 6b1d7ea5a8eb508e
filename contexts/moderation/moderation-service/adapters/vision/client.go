package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"adx402/contexts/moderation/moderation-service/domain/entities"
	domainerrors "adx402/contexts/moderation/moderation-service/domain/errors"
)

// Client calls an external safe-search endpoint to review creatives. The
// endpoint takes the image URL and answers with an approve/reject verdict.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint string, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type reviewRequest struct {
	ImageURL string `json:"image_url"`
}

type reviewResponse struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
}

func (c *Client) Review(ctx context.Context, imageURL string) (entities.Verdict, error) {
	payload, err := json.Marshal(reviewRequest{ImageURL: imageURL})
	if err != nil {
		return entities.Verdict{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return entities.Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.Verdict{}, fmt.Errorf("%w: %v", domainerrors.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.Verdict{}, fmt.Errorf("%w: status %d", domainerrors.ErrOracleUnavailable, resp.StatusCode)
	}

	var body reviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Verdict{}, fmt.Errorf("%w: %v", domainerrors.ErrOracleUnavailable, err)
	}
	return entities.Verdict{
		Approved: body.Approved,
		Reason:   body.Reason,
	}, nil
}
