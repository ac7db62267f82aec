package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanic-dash/internal/config"
	"titanic-dash/internal/domain"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		location string
		override string
		want     Format
	}{
		{location: "titanic.csv", want: FormatCSV},
		{location: "data/titanic.parquet", want: FormatParquet},
		{location: "s3://lake/titanic.PQ", want: FormatParquet},
		{location: "https://example.com/titanic.parquet?sig=abc", want: FormatParquet},
		{location: "titanic.txt", want: FormatCSV},
		{location: "titanic.csv", override: "parquet", want: FormatParquet},
		{location: "titanic.parquet", override: "CSV", want: FormatCSV},
	}
	for _, tt := range tests {
		t.Run(tt.location+"/"+tt.override, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.location, tt.override))
		})
	}
}

func TestParseObjectURL(t *testing.T) {
	u, _ := url.Parse("s3://lake/raw/titanic.csv")
	bucket, key, err := parseObjectURL(u)
	require.NoError(t, err)
	assert.Equal(t, "lake", bucket)
	assert.Equal(t, "raw/titanic.csv", key)

	u, _ = url.Parse("gs://lake/")
	_, _, err = parseObjectURL(u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty key")

	u, _ = url.Parse("azure:///blob.csv")
	_, _, err = parseObjectURL(u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty bucket")
}

func TestOpener_LocalFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "titanic.csv")
	require.NoError(t, os.WriteFile(p, []byte("Survived,Age,Sex,Pclass\n"), 0o644))

	o := NewOpener(config.StorageConfig{}, "")
	for _, loc := range []string{p, "file://" + p} {
		src, err := o.Open(context.Background(), loc)
		require.NoError(t, err, loc)
		assert.Equal(t, FormatCSV, src.Format)
		assert.Equal(t, p, src.LocalPath)
		body, err := io.ReadAll(src.Body)
		require.NoError(t, err)
		assert.Equal(t, "Survived,Age,Sex,Pclass\n", string(body))
		require.NoError(t, src.Close())
	}
}

func TestOpener_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "Survived,Age,Sex,Pclass\n1,30,female,1\n")
	}))
	defer srv.Close()

	o := NewOpener(config.StorageConfig{}, "")
	src, err := o.Open(context.Background(), srv.URL+"/titanic.csv")
	require.NoError(t, err)
	defer src.Close() //nolint:errcheck
	assert.Empty(t, src.LocalPath)
	body, err := io.ReadAll(src.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "female")

	_, err = o.Open(context.Background(), srv.URL+"/missing.csv")
	var unavailable *domain.DataUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, err.Error(), "404")
}

func TestOpener_Unavailable(t *testing.T) {
	o := NewOpener(config.StorageConfig{}, "")
	tests := []struct {
		name     string
		location string
		wantErr  string
	}{
		{name: "empty", location: "  ", wantErr: "empty"},
		{name: "missing file", location: filepath.Join(t.TempDir(), "nope.csv"), wantErr: "open dataset"},
		{name: "s3 without credentials", location: "s3://lake/titanic.csv", wantErr: "KEY_ID"},
		{name: "azure without credentials", location: "azure://lake/titanic.csv", wantErr: "AZURE_ACCOUNT_NAME"},
		{name: "unknown scheme", location: "ftp://host/titanic.csv", wantErr: "unsupported dataset scheme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := o.Open(context.Background(), tt.location)
			var unavailable *domain.DataUnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "https://s3.example.com", endpointURL("s3.example.com"))
	assert.Equal(t, "http://localhost:9000", endpointURL("http://localhost:9000"))
}
