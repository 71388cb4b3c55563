package service

import (
	"slices"
	"time"
)

// List is an ordered task list. Positions are exposed to users as 1-based
// numbers; every method taking a number validates it against the length of
// the list before changing anything.
type List []Task

// Pending returns the number of tasks that are not done.
func (l List) Pending() int {
	n := 0
	for _, t := range l {
		if !t.Done {
			n++
		}
	}
	return n
}

func (l List) check(nums ...int) error {
	for _, n := range nums {
		if n < 1 || n > len(l) {
			return outOfRange(n)
		}
	}
	return nil
}

// Add inserts a new pending task right after the last pending task, so
// completed tasks stay at the tail.
func (l *List) Add(title string, now time.Time) {
	*l = slices.Insert(*l, l.Pending(), NewTask(title, now))
}

// Remove deletes task num.
func (l *List) Remove(num int) (Notice, error) {
	if err := l.check(num); err != nil {
		return "", err
	}
	*l = slices.Delete(*l, num-1, num)
	return "", nil
}

// Complete toggles the done state of task num, stamps it with now and moves
// it to the end of the list whatever its new state.
func (l *List) Complete(num int, now time.Time) (Notice, error) {
	if err := l.check(num); err != nil {
		return "", err
	}
	task := (*l)[num-1]
	task.Done = !task.Done
	task.CreationDate = Stamp(now)
	*l = append(slices.Delete(*l, num-1, num), task)
	return "", nil
}

// Move relocates task num to position pos. Positions beyond the pending
// tasks are not honored: the task goes to the end of the list instead and
// NoticeMovedToEnd is returned.
func (l *List) Move(num, pos int) (Notice, error) {
	if err := l.check(num, pos); err != nil {
		return "", err
	}
	pending := l.Pending()
	task := (*l)[num-1]
	*l = slices.Delete(*l, num-1, num)
	if pos <= pending {
		*l = slices.Insert(*l, pos-1, task)
		return "", nil
	}
	*l = append(*l, task)
	return NoticeMovedToEnd, nil
}

// Modify replaces the title of task num. Completed tasks are left alone and
// NoticeModifyCompleted is returned.
func (l *List) Modify(num int, title string) (Notice, error) {
	if err := l.check(num); err != nil {
		return "", err
	}
	if (*l)[num-1].Done {
		return NoticeModifyCompleted, nil
	}
	(*l)[num-1].Title = title
	return "", nil
}
