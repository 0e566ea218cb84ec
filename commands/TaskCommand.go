// Package commands contains the commands for the application to be used for request inputs.
package commands

import "TaskTrackerService/models"

// TaskCommand represents a command to create or update a task.
// The id is never read from the body; the store assigns it on create and the
// URL carries it on update.
//
// Description is a pointer so a missing field can be told apart from an empty one.
type TaskCommand struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Status      string  `json:"status" validate:"required,taskStatus"`
}

// ParsedStatus returns the domain status of a validated command.
func (c TaskCommand) ParsedStatus() (models.Status, error) {
	return models.ParseStatus(c.Status)
}

// DescriptionValue returns the description or an empty string when absent.
func (c TaskCommand) DescriptionValue() string {
	if c.Description == nil {
		return ""
	}
	return *c.Description
}
