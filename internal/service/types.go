// Package service defines the task model, list operations and the
// backend-agnostic interface for task storage.
package service

import "time"

// Task represents a single task item.
type Task struct {
	Title string

	// CreationDate is set when the task is added and refreshed every time
	// its completion state is toggled.
	CreationDate time.Time

	Done bool
}

// NewTask creates a pending task stamped with now, truncated to whole
// seconds in UTC so it survives a round trip through the store.
func NewTask(title string, now time.Time) Task {
	return Task{
		Title:        title,
		CreationDate: Stamp(now),
		Done:         false,
	}
}

// Stamp normalizes t to the precision kept by the store.
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// Notice is an informational message attached to a successful operation.
// The zero value means there is nothing to report.
type Notice string

const (
	// NoticeMovedToEnd is reported when Move targets the completed region.
	NoticeMovedToEnd Notice = "new position is outside the pending tasks, moved to the end of the list"

	// NoticeModifyCompleted is reported when Modify targets a completed task.
	NoticeModifyCompleted Notice = "cannot modify a completed task"
)
