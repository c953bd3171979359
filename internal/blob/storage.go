package blob

import (
	"context"
	"io"
	"strings"

	"gocart-be/internal/apperr"
	"gocart-be/internal/logger"

	"go.uber.org/zap"
	"gocloud.dev/blob"
)

// Storage writes binary payloads to a bucket and hands back publicly
// resolvable URLs. Only the URL string is ever persisted by the domain
// packages.
type Storage struct {
	bucket  *blob.Bucket
	baseURL string
}

func NewStorage(bucket *blob.Bucket, baseURL string) *Storage {
	return &Storage{
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Storage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", apperr.Upstreamf("open blob writer: %v", err)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", apperr.Upstreamf("write blob %s: %v", key, err)
	}

	if err := w.Close(); err != nil {
		return "", apperr.Upstreamf("close blob %s: %v", key, err)
	}

	return s.baseURL + "/" + key, nil
}

type UploadItem struct {
	Key         string
	ContentType string
	Body        io.Reader
}

type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url,omitempty"`
	Err string `json:"error,omitempty"`
}

// UploadAll is best-effort: one failed item never aborts the rest. The
// caller gets a per-item result and decides what to do with the gaps.
func (s *Storage) UploadAll(ctx context.Context, items []UploadItem) []UploadResult {
	results := make([]UploadResult, 0, len(items))

	for _, item := range items {
		url, err := s.Upload(ctx, item.Key, item.ContentType, item.Body)
		res := UploadResult{Key: item.Key, URL: url}
		if err != nil {
			res.URL = ""
			res.Err = err.Error()
			logger.FromCtx(ctx).Warn("blob upload failed",
				zap.String("key", item.Key),
				zap.Error(err),
			)
		}
		results = append(results, res)
	}

	return results
}
