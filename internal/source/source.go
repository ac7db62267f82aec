// Package source resolves a configured dataset location to a readable stream.
//
// Supported locations: local paths, file://, http(s)://, s3://bucket/key,
// gs://bucket/object and azure://container/blob.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"titanic-dash/internal/config"
	"titanic-dash/internal/domain"
)

// Format is the tabular encoding of a dataset.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// Source is an opened dataset. Callers must Close it.
type Source struct {
	Name      string // location as configured
	Format    Format
	LocalPath string // non-empty when the dataset is a file on local disk
	Body      io.ReadCloser
}

// Close releases the underlying stream.
func (s *Source) Close() error {
	if s == nil || s.Body == nil {
		return nil
	}
	return s.Body.Close()
}

// Opener opens dataset locations using the configured storage credentials.
type Opener struct {
	storage    config.StorageConfig
	format     string
	httpClient *http.Client
}

// NewOpener creates an Opener. format overrides extension-based detection
// when non-empty.
func NewOpener(storage config.StorageConfig, format string) *Opener {
	return &Opener{
		storage:    storage,
		format:     format,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Open resolves location and returns an open Source. Every failure is a
// *domain.DataUnavailableError.
func (o *Opener) Open(ctx context.Context, location string) (*Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domain.ErrDataUnavailable(nil, "dataset location is empty")
	}

	format := DetectFormat(location, o.format)
	body, localPath, err := o.open(ctx, location)
	if err != nil {
		var unavailable *domain.DataUnavailableError
		if errors.As(err, &unavailable) {
			return nil, err
		}
		return nil, domain.ErrDataUnavailable(err, "open dataset %s", location)
	}
	return &Source{Name: location, Format: format, LocalPath: localPath, Body: body}, nil
}

func (o *Opener) open(ctx context.Context, location string) (io.ReadCloser, string, error) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 { // "C:\..." parses with a one-letter scheme
		return openLocal(location)
	}

	switch u.Scheme {
	case "file":
		return openLocal(u.Path)
	case "http", "https":
		body, err := o.openHTTP(ctx, location)
		return body, "", err
	case "s3":
		body, err := o.openS3(ctx, u)
		return body, "", err
	case "gs":
		body, err := o.openGCS(ctx, u)
		return body, "", err
	case "azure":
		body, err := o.openAzure(ctx, u)
		return body, "", err
	default:
		return nil, "", domain.ErrDataUnavailable(nil, "unsupported dataset scheme %q in %s", u.Scheme, location)
	}
}

func openLocal(p string) (io.ReadCloser, string, error) {
	f, err := os.Open(p) //nolint:gosec // dataset path is operator-controlled
	if err != nil {
		return nil, "", err
	}
	return f, p, nil
}

func (o *Opener) openHTTP(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", location, resp.Status)
	}
	return resp.Body, nil
}

// DetectFormat returns override when set, otherwise the format implied by the
// location's extension. Unknown extensions are read as CSV.
func DetectFormat(location, override string) Format {
	switch strings.ToLower(override) {
	case "csv":
		return FormatCSV
	case "parquet":
		return FormatParquet
	}
	p := location
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".parquet", ".pq":
		return FormatParquet
	default:
		return FormatCSV
	}
}

// parseObjectURL extracts the bucket (or container) and key from a
// "scheme://bucket/path/to/object" URL.
func parseObjectURL(u *url.URL) (bucket, key string, err error) {
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("empty bucket in %s", u.String())
	}
	if key == "" {
		return "", "", fmt.Errorf("empty key in %s", u.String())
	}
	return bucket, key, nil
}

// closeBoth closes the stream and then the client that produced it.
type closeBoth struct {
	io.ReadCloser
	closer func() error
}

func (c closeBoth) Close() error {
	return errors.Join(c.ReadCloser.Close(), c.closer())
}
