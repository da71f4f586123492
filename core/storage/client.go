package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"
)

// ErrMissingFile is returned when a required input file does not exist.
var ErrMissingFile = errors.New("file not found")

// ErrLocked is returned when another process holds the lock on a file.
var ErrLocked = errors.New("file is locked by another process")

// Client defines the interface for file operations.
type Client interface {
	// Exists reports whether path exists.
	Exists(ctx context.Context, path string) (bool, error)
	// ReadFile returns the full contents of path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces the contents of path with data.
	WriteFile(ctx context.Context, path string, data []byte) error
	// Lock acquires an advisory lock for path and returns the release function.
	Lock(ctx context.Context, path string) (func() error, error)
}

// NewClient creates a filesystem client based on the configuration.
func NewClient(cfg Config) Client {
	suffix := cfg.LockSuffix
	if suffix == "" {
		suffix = ".lock"
	}
	return &fileClient{lock: cfg.Lock, lockSuffix: suffix}
}

type fileClient struct {
	lock       bool
	lockSuffix string
}

func (c *fileClient) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

func (c *fileClient) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (c *fileClient) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (c *fileClient) Lock(ctx context.Context, path string) (func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !c.lock {
		return func() error { return nil }, nil
	}

	fl := flock.New(path + c.lockSuffix)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return fl.Unlock, nil
}

// RequireFiles returns ErrMissingFile for the first path that does not exist.
func RequireFiles(ctx context.Context, client Client, paths ...string) error {
	for _, p := range paths {
		ok, err := client.Exists(ctx, p)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingFile, p)
		}
	}
	return nil
}
