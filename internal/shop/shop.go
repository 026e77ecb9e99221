// Copyright (c) 2026 NitikBatik. All rights reserved.

package shop

import "github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"

// Shop is a seller's storefront. A seller owns at most one.
type Shop struct {
	ID          convert.ID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	WhatsApp    string     `json:"whatsapp"`
	Alamat      string     `json:"alamat"`
	Avatar      string     `json:"avatar"`
	Banner      string     `json:"banner"`
	UserID      convert.ID `json:"user_id"`
}

// Input is the editable part of a shop.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WhatsApp    string `json:"whatsapp"`
	Alamat      string `json:"alamat"`
}
