// Package remote re-parents objects of an S3-compatible bucket into category
// folders. A "folder" is a zero-byte object whose key ends with "/"; moving an
// object is a server-side copy under the category prefix followed by removal
// of the original.
package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"docsort/internal/mover"
	"docsort/internal/store"
)

// Config holds connection settings for the storage backend.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// Mover relocates bucket objects into category folders. Objects are classified
// by name only: there is no local file, so the engine's content stage never
// contributes.
type Mover struct {
	api     *minio.Client
	bucket  string
	engine  mover.Classifier
	history store.Recorder
}

// New builds a mover with static credentials. history may be nil.
func New(cfg Config, engine mover.Classifier, history store.Recorder) (*Mover, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("remote endpoint cannot be empty")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("remote bucket cannot be empty")
	}
	api, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Mover{api: api, bucket: cfg.Bucket, engine: engine, history: history}, nil
}

// EnsureFolders creates one folder object per category. Existing folders are
// left untouched.
func (m *Mover) EnsureFolders(ctx context.Context, categories []string) error {
	for _, c := range categories {
		key := c + "/"
		if _, err := m.api.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err == nil {
			continue
		}
		_, err := m.api.PutObject(ctx, m.bucket, key, strings.NewReader(""), 0, minio.PutObjectOptions{})
		if err != nil {
			return fmt.Errorf("create folder %q: %w", c, err)
		}
	}
	return nil
}

// ListTopLevel returns the names of objects sitting directly in the bucket
// root, excluding folder markers.
func (m *Mover) ListTopLevel(ctx context.Context) ([]string, error) {
	var names []string
	opts := minio.ListObjectsOptions{Recursive: false}
	for obj := range m.api.ListObjects(ctx, m.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list bucket: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		names = append(names, obj.Key)
	}
	return names, nil
}

// Run ensures the category folders exist, classifies every top-level object by
// name, and re-parents each into its category folder. With dryRun set, no
// folder is created and no object moves.
func (m *Mover) Run(ctx context.Context, categories []string, dryRun bool) ([]mover.Result, error) {
	if !dryRun {
		if err := m.EnsureFolders(ctx, categories); err != nil {
			return nil, err
		}
	}

	names, err := m.ListTopLevel(ctx)
	if err != nil {
		return nil, err
	}

	var results []mover.Result
	for _, name := range names {
		category := m.engine.Classify(name)
		dest := category + "/" + name
		res := mover.Result{Name: name, Category: category, From: name, To: dest}
		if dryRun {
			results = append(results, res)
			continue
		}

		if err := m.reparent(ctx, name, dest); err != nil {
			log.WithError(err).WithField("object", name).Warn("re-parent failed, skipping")
			continue
		}
		results = append(results, res)
		log.WithFields(log.Fields{"object": name, "category": category}).Info("moved")

		if m.history != nil {
			rec := store.Move{
				Name:        name,
				Source:      name,
				Destination: dest,
				Category:    category,
				Backend:     "remote",
			}
			if err := m.history.Record(ctx, rec); err != nil {
				log.WithError(err).WithField("object", name).Warn("failed to record move")
			}
		}
	}
	return results, nil
}

func (m *Mover) reparent(ctx context.Context, name, dest string) error {
	dst := minio.CopyDestOptions{Bucket: m.bucket, Object: dest}
	src := minio.CopySrcOptions{Bucket: m.bucket, Object: name}
	if _, err := m.api.CopyObject(ctx, dst, src); err != nil {
		return fmt.Errorf("copy %q: %w", name, err)
	}
	if err := m.api.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove original %q: %w", name, err)
	}
	return nil
}
