// Copyright (c) 2026 NitikBatik. All rights reserved.

package article

import (
	"encoding/json"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/convert"
)

// ExcerptLength is the rune length of a derived excerpt.
const ExcerptLength = 160

var (
	// bodyPolicy keeps the formatting produced by the article editor.
	bodyPolicy = bluemonday.UGCPolicy()
	// textPolicy strips every tag, for excerpts.
	textPolicy = bluemonday.StrictPolicy()
)

// Article is a published editorial piece.
type Article struct {
	ID          convert.ID `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// UnmarshalJSON normalizes the backend's inconsistent field names.
//
// Articles come back with "created_At" from some endpoints and "createdAt" from
// others, and with "image_url" or "imageUrl". The description is sanitized and a
// missing excerpt is derived from it.
func (a *Article) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             convert.ID `json:"id"`
		Title          string     `json:"title"`
		Slug           string     `json:"slug"`
		Excerpt        string     `json:"excerpt"`
		Description    string     `json:"description"`
		ImageURL       string     `json:"imageUrl"`
		ImageURLSnake  string     `json:"image_url"`
		CreatedAt      string     `json:"createdAt"`
		CreatedAtSnake string     `json:"created_At"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Article{
		ID:          raw.ID,
		Title:       raw.Title,
		Slug:        raw.Slug,
		Excerpt:     strings.TrimSpace(raw.Excerpt),
		Description: Sanitize(raw.Description),
		ImageURL:    firstNonEmpty(raw.ImageURL, raw.ImageURLSnake),
		CreatedAt:   convert.ToTime(firstNonEmpty(raw.CreatedAt, raw.CreatedAtSnake)),
	}
	if a.Excerpt == "" {
		a.Excerpt = Excerpt(a.Description)
	}

	return nil
}

// Sanitize cleans editor HTML down to the user-generated-content allowlist.
func Sanitize(html string) string {
	return strings.TrimSpace(bodyPolicy.Sanitize(html))
}

// Excerpt derives a plain-text summary from article HTML.
func Excerpt(body string) string {
	text := strings.Join(strings.Fields(html.UnescapeString(textPolicy.Sanitize(body))), " ")
	if utf8.RuneCountInString(text) <= ExcerptLength {
		return text
	}

	runes := []rune(text)[:ExcerptLength]
	if cut := strings.LastIndexByte(string(runes), ' '); cut > ExcerptLength/2 {
		return string(runes)[:cut] + "…"
	}
	return string(runes) + "…"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
