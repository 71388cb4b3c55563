package service

import "context"

// Service defines the interface for task backend operations.
// Task numbers are 1-based. Every mutating call is a single transaction:
// either the whole updated list is persisted or nothing changes.
type Service interface {
	// List returns all tasks in display order.
	List(ctx context.Context) ([]Task, error)

	// Add creates a pending task after the last pending task.
	Add(ctx context.Context, title string) (Notice, error)

	// Remove deletes a task.
	Remove(ctx context.Context, num int) (Notice, error)

	// Complete toggles a task's done state and moves it to the end.
	Complete(ctx context.Context, num int) (Notice, error)

	// Move relocates a task within the pending tasks.
	Move(ctx context.Context, num, pos int) (Notice, error)

	// Modify replaces the title of a pending task.
	Modify(ctx context.Context, num int, title string) (Notice, error)
}
