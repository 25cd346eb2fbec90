package seedclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GregMSThompson/transaction-insights/internal/errs"
	"github.com/GregMSThompson/transaction-insights/internal/models"
)

const source = "seed dataset"

// Adapter downloads the transaction dataset used to seed the store.
type Adapter struct {
	url    string
	client *http.Client
}

func NewAdapter(url string, timeout time.Duration) *Adapter {
	return &Adapter{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (a *Adapter) FetchTransactions(ctx context.Context) ([]models.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, errs.NewUpstreamFetchError(source, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errs.NewUpstreamFetchError(source, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, errs.NewUpstreamFetchError(source, resp.StatusCode, nil)
	}

	var txs []models.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, errs.NewUpstreamFetchError(source, resp.StatusCode, fmt.Errorf("decode body: %w", err))
	}
	return txs, nil
}
