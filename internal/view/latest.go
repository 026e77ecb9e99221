// Copyright (c) 2026 NitikBatik. All rights reserved.

package view

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/apiclient"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/fetch"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
)

const (
	// latestAttempts is the total number of calls for the landing page.
	latestAttempts = 3

	// latestStep is the linear backoff unit: 1s, then 2s.
	latestStep = time.Second
)

// LatestModel is the landing page's product strip.
type LatestModel struct {
	Items    []product.Product `json:"items"`
	Loading  bool              `json:"loading"`
	Error    string            `json:"error,omitempty"`
	Complete bool              `json:"complete"`
}

// LatestProducts loads the newest products once per page load.
//
// The backend may briefly answer with an empty list while indexing, so an
// empty answer is retried. A failed request is not: its error is shown.
type LatestProducts struct {
	products *product.Store
	policy   fetch.Policy[[]product.Product]
	guard    fetch.Guard
	complete atomic.Bool
}

// NewLatestProducts creates the model. A nil sleep waits on the real clock.
func NewLatestProducts(products *product.Store, sleep SleepFunc) *LatestProducts {
	return &LatestProducts{
		products: products,
		policy: fetch.Policy[[]product.Product]{
			MaxAttempts: latestAttempts,
			Backoff:     fetch.Linear(latestStep),
			RetryIf: func(items []product.Product, err error) bool {
				return err == nil && len(items) == 0
			},
			Sleep: sleep,
		},
	}
}

// Load fetches once per page load and returns the model.
func (latest *LatestProducts) Load(ctx context.Context) (LatestModel, error) {
	_, err := latest.guard.Do(ctx, mounted(ctx, "latest"), func(ctx context.Context) error {
		latest.complete.Store(false)
		defer latest.complete.Store(true)

		_, attempts, err := fetch.Retry(ctx, latest.policy, func(ctx context.Context) ([]product.Product, error) {
			return latest.products.FetchLatest(ctx, product.LatestLimit)
		})

		ctxutil.GetLogger(ctx).DebugContext(ctx, "latest_products_loaded",
			slog.Int("attempts", attempts),
			slog.String("error", apperr.Message(err)),
			slog.Bool("unreachable", apiclient.IsTransport(err)),
		)
		return err
	})

	return latest.Model(), err
}

// Model returns the current state without fetching.
func (latest *LatestProducts) Model() LatestModel {
	snapshot := latest.products.Latest()
	return LatestModel{
		Items:    snapshot.Items,
		Loading:  snapshot.Loading,
		Error:    snapshot.Error,
		Complete: latest.complete.Load(),
	}
}
