package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"google.golang.org/api/option"

	"titanic-dash/internal/domain"
)

// openS3 fetches an object from S3-compatible storage. Addressing is
// path-style so non-AWS endpoints work.
func (o *Opener) openS3(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if !o.storage.HasS3Config() {
		return nil, domain.ErrDataUnavailable(nil, "S3 dataset %s requires KEY_ID, SECRET, ENDPOINT and REGION", u.String())
	}
	bucket, key, err := parseObjectURL(u)
	if err != nil {
		return nil, err
	}

	client := s3.New(s3.Options{
		Region: *o.storage.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			*o.storage.S3KeyID, *o.storage.S3Secret, "",
		),
		BaseEndpoint: aws.String(endpointURL(*o.storage.S3Endpoint)),
		UsePathStyle: true,
	})

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 GetObject %s/%s: %w", bucket, key, err)
	}
	return out.Body, nil
}

// openGCS reads an object from Google Cloud Storage. Without GCS_KEY_FILE the
// client falls back to application default credentials.
func (o *Opener) openGCS(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	bucket, key, err := parseObjectURL(u)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if o.storage.GCSKeyFile != "" {
		opts = append(opts, option.WithAuthCredentialsFile(option.ServiceAccount, o.storage.GCSKeyFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create GCS client: %w", err)
	}

	rc, err := client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("gcs read %s/%s: %w", bucket, key, err)
	}
	return closeBoth{ReadCloser: rc, closer: client.Close}, nil
}

// openAzure downloads a blob using shared-key credentials. The URL host is
// the container name; the account comes from configuration.
func (o *Opener) openAzure(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if !o.storage.HasAzureConfig() {
		return nil, domain.ErrDataUnavailable(nil, "Azure dataset %s requires AZURE_ACCOUNT_NAME and AZURE_ACCOUNT_KEY", u.String())
	}
	container, blob, err := parseObjectURL(u)
	if err != nil {
		return nil, err
	}

	cred, err := azblob.NewSharedKeyCredential(o.storage.AzureAccountName, o.storage.AzureAccountKey)
	if err != nil {
		return nil, fmt.Errorf("create shared key credential: %w", err)
	}
	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net", o.storage.AzureAccountName)
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create Azure blob client: %w", err)
	}

	resp, err := client.DownloadStream(ctx, container, blob, nil)
	if err != nil {
		return nil, fmt.Errorf("azure download %s/%s: %w", container, blob, err)
	}
	return resp.Body, nil
}

func endpointURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return "https://" + endpoint
}
