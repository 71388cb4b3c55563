// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"slices"
	"sync"
	"time"

	"journal/internal/service"
)

// FixedTime is the clock value used by FakeService.
var FixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// FakeService is an in-memory implementation of service.Service for testing.
// It applies the same list operations as the real store without touching
// the filesystem.
type FakeService struct {
	mu    sync.Mutex
	tasks service.List

	// Now stamps added and completed tasks.
	Now func() time.Time

	// Error injection for testing
	ListErr     error
	AddErr      error
	RemoveErr   error
	CompleteErr error
	MoveErr     error
	ModifyErr   error
}

// NewFakeService creates an empty FakeService whose clock returns FixedTime.
func NewFakeService() *FakeService {
	return &FakeService{
		Now: func() time.Time { return FixedTime },
	}
}

// AddTask appends a task as is, bypassing the pending-first placement.
func (f *FakeService) AddTask(title string, done bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		Title:        title,
		CreationDate: FixedTime,
		Done:         done,
	})
}

// Tasks returns a copy of the current list.
func (f *FakeService) Tasks() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.tasks)
}

// List implements service.Service.
func (f *FakeService) List(ctx context.Context) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Tasks(), nil
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, title string) (service.Notice, error) {
	return f.apply(f.AddErr, func(l *service.List) (service.Notice, error) {
		l.Add(title, f.Now())
		return "", nil
	})
}

// Remove implements service.Service.
func (f *FakeService) Remove(ctx context.Context, num int) (service.Notice, error) {
	return f.apply(f.RemoveErr, func(l *service.List) (service.Notice, error) {
		return l.Remove(num)
	})
}

// Complete implements service.Service.
func (f *FakeService) Complete(ctx context.Context, num int) (service.Notice, error) {
	return f.apply(f.CompleteErr, func(l *service.List) (service.Notice, error) {
		return l.Complete(num, f.Now())
	})
}

// Move implements service.Service.
func (f *FakeService) Move(ctx context.Context, num, pos int) (service.Notice, error) {
	return f.apply(f.MoveErr, func(l *service.List) (service.Notice, error) {
		return l.Move(num, pos)
	})
}

// Modify implements service.Service.
func (f *FakeService) Modify(ctx context.Context, num int, title string) (service.Notice, error) {
	return f.apply(f.ModifyErr, func(l *service.List) (service.Notice, error) {
		return l.Modify(num, title)
	})
}

// apply runs op on a copy and keeps the result only on success, like the
// file store which never writes a failed transaction.
func (f *FakeService) apply(injected error, op func(*service.List) (service.Notice, error)) (service.Notice, error) {
	if injected != nil {
		return "", injected
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	list := slices.Clone(f.tasks)
	notice, err := op(&list)
	if err != nil {
		return "", err
	}
	f.tasks = list
	return notice, nil
}
