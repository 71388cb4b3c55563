// Package jsonfile implements the service.Service interface on top of a
// single JSON file holding the whole task list.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"journal/internal/config"
	"journal/internal/service"
)

const (
	// FileMode is the permission used when the store file is created.
	FileMode = 0644

	// LockRetryDelay is the polling interval while waiting for the lock file.
	LockRetryDelay = 50 * time.Millisecond
)

// Store implements service.Service. Every call opens the file, works on a
// freshly loaded list and closes the file again; nothing is cached between
// calls.
type Store struct {
	path   string
	lock   bool
	logger *log.Logger

	// Now is the clock used to stamp added and completed tasks.
	Now func() time.Time
}

// New creates a store for the file named by cfg.File.
func New(cfg *config.Config, logger *log.Logger) (*Store, error) {
	if cfg.File == "" {
		return nil, errors.New("no task file configured")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		path:   cfg.File,
		lock:   cfg.Lock,
		logger: logger,
		Now:    time.Now,
	}, nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// List returns all tasks. A missing file is an empty list and is not created.
func (s *Store) List(ctx context.Context) ([]service.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock, err := s.acquire(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("task file does not exist", "path", s.path)
			return nil, nil
		}
		return nil, &service.IOError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	return s.read(f)
}

// Add implements service.Service.
func (s *Store) Add(ctx context.Context, title string) (service.Notice, error) {
	return s.update(ctx, func(l *service.List) (service.Notice, error) {
		l.Add(title, s.Now())
		return "", nil
	})
}

// Remove implements service.Service.
func (s *Store) Remove(ctx context.Context, num int) (service.Notice, error) {
	return s.update(ctx, func(l *service.List) (service.Notice, error) {
		return l.Remove(num)
	})
}

// Complete implements service.Service.
func (s *Store) Complete(ctx context.Context, num int) (service.Notice, error) {
	return s.update(ctx, func(l *service.List) (service.Notice, error) {
		return l.Complete(num, s.Now())
	})
}

// Move implements service.Service.
func (s *Store) Move(ctx context.Context, num, pos int) (service.Notice, error) {
	return s.update(ctx, func(l *service.List) (service.Notice, error) {
		return l.Move(num, pos)
	})
}

// Modify implements service.Service.
func (s *Store) Modify(ctx context.Context, num int, title string) (service.Notice, error) {
	return s.update(ctx, func(l *service.List) (service.Notice, error) {
		return l.Modify(num, title)
	})
}

// update runs op as one load, mutate, save transaction. The file is only
// rewritten when op succeeds.
func (s *Store) update(ctx context.Context, op func(*service.List) (service.Notice, error)) (service.Notice, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	unlock, err := s.acquire(ctx, true)
	if err != nil {
		return "", err
	}
	defer unlock()

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, FileMode)
	if err != nil {
		return "", &service.IOError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	tasks, err := s.read(f)
	if err != nil {
		return "", err
	}

	list := service.List(tasks)
	notice, err := op(&list)
	if err != nil {
		return "", err
	}

	if err := s.write(f, list); err != nil {
		return "", err
	}
	return notice, nil
}

func (s *Store) read(f *os.File) ([]service.Task, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &service.IOError{Op: "read", Path: s.path, Err: err}
	}

	tasks, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// write replaces the whole file content with tasks. Encoding happens before
// the file is truncated so a failure there leaves the old list in place.
func (s *Store) write(f *os.File, tasks []service.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	if err := f.Truncate(0); err != nil {
		return &service.IOError{Op: "truncate", Path: s.path, Err: err}
	}
	if _, err := f.WriteAt(data, 0); err != nil {
		return &service.IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &service.IOError{Op: "sync", Path: s.path, Err: err}
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks), "bytes", len(data))
	return nil
}

// acquire takes the lock file next to the store when locking is enabled.
// The returned func releases it.
func (s *Store) acquire(ctx context.Context, exclusive bool) (func(), error) {
	if !s.lock {
		return func() {}, nil
	}

	lockPath := s.path + ".lock"
	fl := flock.New(lockPath)

	var ok bool
	var err error
	if exclusive {
		ok, err = fl.TryLockContext(ctx, LockRetryDelay)
	} else {
		ok, err = fl.TryRLockContext(ctx, LockRetryDelay)
	}
	if err != nil {
		return nil, &service.IOError{Op: "lock", Path: lockPath, Err: err}
	}
	if !ok {
		return nil, &service.IOError{Op: "lock", Path: lockPath, Err: errors.New("lock not acquired")}
	}
	s.logger.Debug("acquired lock", "path", lockPath, "exclusive", exclusive)

	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Warn("failed to release lock", "path", lockPath, "err", err)
		}
	}, nil
}
