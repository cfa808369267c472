// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserStatistics summarises the user population.
type UserStatistics struct {
	TotalUsers int64 `json:"totalUsers"`

	// ActiveUsers counts users with a non-blank username and email.
	ActiveUsers int64 `json:"activeUsers"`

	// InactiveUsers is always TotalUsers - ActiveUsers.
	InactiveUsers int64 `json:"inactiveUsers"`
}

// TodoStatistics summarises every todo in the system.
type TodoStatistics struct {
	TotalTodos int64 `json:"totalTodos"`
	DoneTodos  int64 `json:"doneTodos"`

	// PendingTodos is always TotalTodos - DoneTodos.
	PendingTodos int64 `json:"pendingTodos"`

	// CompletionRate is DoneTodos/TotalTodos*100, or 0 when there are no todos.
	CompletionRate float64 `json:"completionRate"`
}

// NewTodoStatistics derives pending count and completion rate from the
// total and done counts.
func NewTodoStatistics(total, done int64) TodoStatistics {
	stats := TodoStatistics{
		TotalTodos:   total,
		DoneTodos:    done,
		PendingTodos: total - done,
	}
	if total > 0 {
		stats.CompletionRate = float64(done) / float64(total) * 100
	}

	return stats
}

// ErrorResponse is the body written for every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CountResponse carries the result of a count operation.
type CountResponse struct {
	Count int64 `json:"count"`
}

// ExistsResponse carries the result of an existence check.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// ActiveResponse carries the result of a user activity check.
type ActiveResponse struct {
	UserID int64 `json:"id"`
	Active bool  `json:"active"`
}

// DeletedResponse reports how many records a bulk delete removed.
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
