package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is returned by Get when no snapshot exists for the key.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore persists one serialized knowledge snapshot per document
// key. Put must atomically replace any prior record for the key: readers
// never observe a partially written snapshot.
type SnapshotStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]string, error)
}

// StorageType represents the storage backend type.
type StorageType string

const (
	StorageTypeLocal  StorageType = "local"
	StorageTypeS3     StorageType = "s3"
	StorageTypeMemory StorageType = "memory"
)

// StorageConfig holds configuration for storage.
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Prefix     string // Key prefix for S3 objects
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// NewStore creates a snapshot store instance based on configuration.
func NewStore(cfg StorageConfig) (SnapshotStore, error) {
	switch cfg.Type {
	case StorageTypeLocal:
		return NewLocalStore(cfg.LocalPath)
	case StorageTypeS3:
		return NewS3Store(cfg)
	case StorageTypeMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// NewStoreFromEnv creates a snapshot store from environment variables.
func NewStoreFromEnv() (SnapshotStore, error) {
	storageType := os.Getenv("STORAGE_TYPE")
	if storageType == "" {
		storageType = "local" // Default to local for development
	}

	switch StorageType(storageType) {
	case StorageTypeLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./knowledge" // Default knowledge directory
		}
		return NewLocalStore(localPath)

	case StorageTypeS3:
		cfg := StorageConfig{
			Type:     StorageTypeS3,
			S3Bucket: os.Getenv("AWS_S3_BUCKET"),
			S3Prefix: os.Getenv("AWS_S3_PREFIX"),
			S3Region: os.Getenv("AWS_REGION"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1" // Default region
		}
		if cfg.S3Prefix == "" {
			cfg.S3Prefix = "knowledge"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Store(cfg)

	case StorageTypeMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}
