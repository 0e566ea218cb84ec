// Package models contains the data models for the application to be used in request handling.
package models

// Task represents a task in the system.
// Task has the following properties:
// - Id: The unique identifier of the task, assigned by the store.
// - Title: The title of the task.
// - Description: The description of the task, may be empty.
// - Status: Whether the task is done or still to do.
type Task struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}
