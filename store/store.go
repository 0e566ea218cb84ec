// Package store keeps the tasks of the service.
package store

import (
	"TaskTrackerService/models"

	"github.com/pkg/errors"
)

// ErrTaskNotFound is returned when no task carries the requested id.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore defines the operations the handlers need on the task collection.
type TaskStore interface {
	List() []models.Task
	Get(id int) (models.Task, error)
	Create(title, description string, status models.Status) models.Task
	Update(id int, title, description string, status models.Status) (models.Task, error)
	Delete(id int) error
}
