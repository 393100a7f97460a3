package main

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/QSI-BAQS/pathsearch/blobstore"
	"github.com/QSI-BAQS/pathsearch/blobstore/minio"
	"github.com/QSI-BAQS/pathsearch/blobstore/s3"
	"github.com/QSI-BAQS/pathsearch/config"
)

// storeSpec is a parsed --store URL.
type storeSpec struct {
	scheme string // file, s3 or minio
	host   string // minio endpoint
	bucket string
	prefix string
	dir    string // file stores
}

func parseStoreURL(raw string) (storeSpec, error) {
	if !strings.Contains(raw, "://") {
		return storeSpec{scheme: "file", dir: filepath.Clean(raw)}, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return storeSpec{}, fmt.Errorf("store %q: %w", raw, err)
	}

	switch u.Scheme {
	case "file":
		dir := u.Host + u.Path
		if dir == "" {
			return storeSpec{}, fmt.Errorf("store %q: missing directory", raw)
		}
		return storeSpec{scheme: "file", dir: filepath.Clean(dir)}, nil

	case "s3":
		if u.Host == "" {
			return storeSpec{}, fmt.Errorf("store %q: missing bucket", raw)
		}
		return storeSpec{scheme: "s3", bucket: u.Host, prefix: strings.Trim(u.Path, "/")}, nil

	case "minio":
		bucket, prefix, _ := strings.Cut(strings.Trim(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return storeSpec{}, fmt.Errorf("store %q: want minio://host/bucket[/prefix]", raw)
		}
		return storeSpec{scheme: "minio", host: u.Host, bucket: bucket, prefix: prefix}, nil

	default:
		return storeSpec{}, fmt.Errorf("store %q: unsupported scheme %q", raw, u.Scheme)
	}
}

func openStore(ctx context.Context, cfg config.Config) (blobstore.Store, error) {
	spec, err := parseStoreURL(cfg.Store)
	if err != nil {
		return nil, err
	}

	switch spec.scheme {
	case "s3":
		opts := []s3.Option{s3.WithPrefix(spec.prefix)}
		if cfg.S3.Region != "" {
			opts = append(opts, s3.WithRegion(cfg.S3.Region))
		}
		if cfg.S3.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(cfg.S3.Endpoint))
		}
		return s3.New(ctx, spec.bucket, opts...)

	case "minio":
		client, err := minio.Dial(minio.Config{
			Endpoint:  spec.host,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Secure:    cfg.MinIO.Secure,
			Region:    cfg.MinIO.Region,
		})
		if err != nil {
			return nil, err
		}
		return minio.NewStore(client, spec.bucket, spec.prefix), nil

	default:
		return blobstore.NewLocalStore(spec.dir), nil
	}
}
