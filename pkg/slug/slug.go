// Copyright (c) 2026 NitikBatik. All rights reserved.

// Package slug generates URL slugs from human-readable strings.
//
// # Usage
//
// [Title] derives article slugs exactly the way the storefront always has, so
// slugs created from this server match those created before it existed.
// [From] is the Unicode-aware variant used where no compatibility constraint
// applies, such as normalizing uploaded file names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// whitespace covers ASCII whitespace, the Unicode space separators (NBSP
// included), the line and paragraph separators, and BOM.
const whitespace = `\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	// nonWord matches runs of characters that are neither ASCII word characters nor whitespace.
	nonWord = regexp.MustCompile(`[^a-z0-9_` + whitespace + `]+`)
	// spaces matches runs of whitespace.
	spaces = regexp.MustCompile(`[` + whitespace + `]+`)

	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Title derives a slug from an article title.
//
// # Transformation Pipeline
//
// 1. Converts to lowercase.
// 2. Removes every character that is not an ASCII word character or whitespace.
// 3. Replaces each run of whitespace (tabs, newlines, NBSP) with a single hyphen.
//
// The transformation is lossy and performs no uniqueness check: two titles that
// differ only in punctuation produce the same slug.
//
// Example:
//
//	slug.Title("Batik Tulis Jawa!") // "batik-tulis-jawa"
func Title(title string) string {
	result := strings.ToLower(title)
	result = nonWord.ReplaceAllString(result, "")
	return spaces.ReplaceAllString(result, "-")
}

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// FileName slugs the base of a file name while keeping its extension.
//
// Example:
//
//	slug.FileName("Motif Parang Rusak.JPG") // "motif-parang-rusak.jpg"
func FileName(name string) string {
	base, ext := name, ""
	if dot := strings.LastIndex(name, "."); dot > 0 {
		base, ext = name[:dot], strings.ToLower(name[dot:])
	}

	cleaned := From(base)
	if cleaned == "" {
		cleaned = "file"
	}

	return cleaned + extension(ext)
}

// extension keeps only ASCII alphanumerics of an extension such as ".JPG".
func extension(ext string) string {
	if ext == "" {
		return ""
	}
	cleaned := nonAlphanumeric.ReplaceAllString(strings.ToLower(strings.TrimPrefix(ext, ".")), "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if cleaned == "" {
		return ""
	}
	return "." + cleaned
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
