package mapping

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"inventory-viewer/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketProvider reads mapping files from an object storage bucket.
type BucketProvider struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketProvider creates a provider reading bucket/prefix.
func NewBucketProvider(client storage.Client, bucket, prefix string) *BucketProvider {
	return &BucketProvider{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Name returns the provider description.
func (p *BucketProvider) Name() string {
	return "bucket:" + p.bucket + "/" + p.prefix
}

// Load reads the mapping files from the bucket.
func (p *BucketProvider) Load(ctx context.Context) (*Loaded, error) {
	if err := p.checkBucket(ctx); err != nil {
		return nil, err
	}
	return loadAll(ctx, p.fetch, p.listIcons), nil
}

// Missing returns the expected mapping files that are not present in the bucket.
// At least one icon manifest or a non-empty icon folder satisfies the icon requirement.
func (p *BucketProvider) Missing(ctx context.Context) ([]string, error) {
	if err := p.checkBucket(ctx); err != nil {
		return nil, err
	}

	var missing []string
	for _, f := range DefaultFiles {
		if !p.exists(ctx, f.Name) {
			missing = append(missing, f.Name)
		}
	}

	for _, m := range IconManifests {
		if p.exists(ctx, m) {
			return missing, nil
		}
	}
	icons, err := p.listIcons(ctx)
	if err != nil {
		return nil, err
	}
	if len(icons) == 0 {
		missing = append(missing, IconDir+"/")
	}
	return missing, nil
}

func (p *BucketProvider) checkBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", p.bucket)
	}
	return nil
}

func (p *BucketProvider) key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

func (p *BucketProvider) exists(ctx context.Context, name string) bool {
	// Stopping after the first entry must also stop the listing goroutine.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	key := p.key(name)
	opts := minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
		MaxKeys:   1,
	}
	found := false
	for obj := range p.client.ListObjects(ctx, p.bucket, opts) {
		if obj.Err == nil && obj.Key == key {
			found = true
		}
		break
	}
	return found
}

func (p *BucketProvider) fetch(ctx context.Context, name string) ([]byte, bool, error) {
	obj, err := p.client.GetObject(ctx, p.bucket, p.key(name), minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, true, nil
}

func (p *BucketProvider) listIcons(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    p.key(IconDir) + "/",
		Recursive: true,
	}
	var files []string
	for obj := range p.client.ListObjects(ctx, p.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list icons: %w", obj.Err)
		}
		if strings.HasSuffix(strings.ToLower(obj.Key), ".webp") {
			files = append(files, obj.Key)
		}
	}
	return files, nil
}

func isNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
