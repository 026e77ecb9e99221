// Copyright (c) 2026 NitikBatik. All rights reserved.

package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/apperr"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/internal/platform/ctxutil"
	"github.com/Ferdiyansyah59/nitik-batik-fe-sub000/pkg/slug"
)

// File is one file part of a multipart request.
type File struct {
	// Name is the original file name; it is slugged before sending.
	Name string
	Body io.Reader
}

// Form is a multipart/form-data body of plain fields and files.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct{ name, value string }

type formFile struct {
	field string
	file  File
}

// NewForm creates an empty multipart form.
func NewForm() *Form { return &Form{} }

// Field appends a plain field. Empty values are skipped.
func (form *Form) Field(name, value string) *Form {
	if value != "" {
		form.fields = append(form.fields, formField{name, value})
	}
	return form
}

// File appends a file part. A nil body is skipped.
func (form *Form) File(field string, file *File) *Form {
	if file != nil && file.Body != nil {
		form.files = append(form.files, formFile{field, *file})
	}
	return form
}

// HasFiles reports whether any file part was added.
func (form *Form) HasFiles() bool { return len(form.files) > 0 }

// encode renders the form. The content type carries the writer's own boundary.
func (form *Form) encode() (*bytes.Buffer, string, error) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)

	for _, f := range form.fields {
		if err := writer.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	for _, f := range form.files {
		part, err := writer.CreateFormFile(f.field, slug.FileName(f.file.Name))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.file.Body); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buffer, writer.FormDataContentType(), nil
}

/*
Upload posts a single file under fieldName and decodes the envelope data into out.

Upload progress is logged at debug level; it is not exposed to callers.

Parameters:
  - context: request context
  - path: upload endpoint
  - file: the file to send
  - fieldName: multipart field name expected by the endpoint ("image", "file", ...)
  - out: destination, typically a *string for the uploaded resource path
*/
func (client *Client) Upload(context context.Context, path string, file File, fieldName string, out any) error {
	return client.send(context, http.MethodPost, path, NewForm().File(fieldName, &file), out)
}

func (client *Client) send(context context.Context, method, path string, form *Form, out any) error {
	buffer, contentType, err := form.encode()
	if err != nil {
		return apperr.Setup(fmt.Errorf("encode multipart %s %s: %w", method, path, err))
	}

	total := int64(buffer.Len())
	body := &progressReader{
		reader: buffer,
		total:  total,
		report: func(percent int) {
			ctxutil.GetLogger(context).DebugContext(context, "upload_progress",
				slog.String("path", path),
				slog.Int("percent", percent),
			)
		},
	}

	request, err := client.newRequest(context, method, path, body)
	if err != nil {
		return err
	}
	request.ContentLength = total
	request.Header.Set("Content-Type", contentType)

	return client.execute(request, out)
}

// progressReader reports every crossed quarter of the body.
type progressReader struct {
	reader io.Reader
	total  int64
	read   int64
	next   int
	report func(percent int)
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	p.read += int64(n)

	if p.total > 0 {
		percent := int(p.read * 100 / p.total)
		for p.next <= 100 && percent >= p.next {
			if p.next > 0 {
				p.report(p.next)
			}
			p.next += 25
		}
	}

	return n, err
}
