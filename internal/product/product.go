// Copyright (c) 2026 NitikBatik. All rights reserved.

package product

import (
	"encoding/json"
	"time"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/slice"
)

// Product is an item sold by a seller's shop.
type Product struct {
	ID          convert.ID `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Harga       float64    `json:"harga"`
	CategoryID  convert.ID `json:"category_id"`
	StoreID     convert.ID `json:"store_id"`
	Thumbnail   string     `json:"thumbnail"`
	Images      []string   `json:"images"`
	CreatedAt   time.Time  `json:"created_at"`
}

// image accepts both "path" and {"url": "path"} entries.
type image string

func (i *image) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = image(s)
		return nil
	}

	var obj struct {
		URL   string `json:"url"`
		Image string `json:"image"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.URL != "" {
		*i = image(obj.URL)
	} else {
		*i = image(obj.Image)
	}
	return nil
}

// UnmarshalJSON normalizes prices sent as strings and the two image layouts.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          convert.ID `json:"id"`
		Name        string     `json:"name"`
		Slug        string     `json:"slug"`
		Description string     `json:"description"`
		Harga       convert.ID `json:"harga"`
		CategoryID  convert.ID `json:"category_id"`
		StoreID     convert.ID `json:"store_id"`
		Thumbnail   string     `json:"thumbnail"`
		Images      []image    `json:"images"`
		CreatedAt   string     `json:"created_at"`
		CreatedAtJS string     `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	created := raw.CreatedAt
	if created == "" {
		created = raw.CreatedAtJS
	}

	images := slice.Filter(slice.Map(raw.Images, func(i image) string { return string(i) }),
		func(s string) bool { return s != "" })

	*p = Product{
		ID:          raw.ID,
		Name:        raw.Name,
		Slug:        raw.Slug,
		Description: raw.Description,
		Harga:       convert.ToFloat64(raw.Harga.String()),
		CategoryID:  raw.CategoryID,
		StoreID:     raw.StoreID,
		Thumbnail:   raw.Thumbnail,
		Images:      images,
		CreatedAt:   convert.ToTime(created),
	}
	return nil
}
