// Copyright (c) 2026 NitikBatik. All rights reserved.

package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/article"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/product"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/shop"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/user"
)

// Total is one counter of the admin overview.
type Total struct {
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

// OverviewModel is the admin dashboard's landing state.
type OverviewModel struct {
	Articles Total `json:"articles"`
	Products Total `json:"products"`
	Shops    Total `json:"shops"`
	Users    Total `json:"users"`
}

// AdminOverview counts the platform's content.
type AdminOverview struct {
	articles *article.Store
	products *product.Store
	shops    *shop.Store
	users    *user.Store
}

// NewAdminOverview creates the model.
func NewAdminOverview(articles *article.Store, products *product.Store, shops *shop.Store, users *user.Store) *AdminOverview {
	return &AdminOverview{articles: articles, products: products, shops: shops, users: users}
}

/*
Load fetches the four totals concurrently.

Description: Each counter reads only the total of its list and keeps its own
error; one failing counter does not hide the others. The visitor's loaded lists
are not touched. Only authorization errors are returned, since they apply to the
whole page.
*/
func (overview *AdminOverview) Load(ctx context.Context) (OverviewModel, error) {
	var model OverviewModel
	var group errgroup.Group

	count := func(total *Total, fetch func(context.Context) (int, error)) {
		group.Go(func() error {
			n, err := fetch(ctx)
			if apperr.HasCode(err, apperr.CodeUnauthorized) || apperr.HasCode(err, apperr.CodeForbidden) {
				return err
			}
			total.Count = n
			total.Error = apperr.Message(err)
			return nil
		})
	}

	count(&model.Articles, overview.articles.Total)
	count(&model.Products, overview.products.Total)
	count(&model.Shops, overview.shops.Total)
	count(&model.Users, overview.users.Total)

	err := group.Wait()
	return model, err
}
