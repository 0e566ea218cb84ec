package models

import (
	"encoding/json"
	"fmt"
)

// Status is the completion state of a task.
type Status int

const (
	StatusTodo Status = iota
	StatusDone
)

// Wire literals used for Status in requests and responses.
const (
	StatusDoneLabel = "выполнена"
	StatusTodoLabel = "не выполнена"
)

// Statuses lists every valid Status.
var Statuses = []Status{StatusDone, StatusTodo}

// ParseStatus maps a wire literal to a Status.
func ParseStatus(value string) (Status, error) {
	switch value {
	case StatusDoneLabel:
		return StatusDone, nil
	case StatusTodoLabel:
		return StatusTodo, nil
	}
	return StatusTodo, fmt.Errorf("unknown task status %q", value)
}

func (s Status) IsValid() bool {
	return s == StatusDone || s == StatusTodo
}

// String returns the wire literal of the status.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return StatusDoneLabel
	case StatusTodo:
		return StatusTodoLabel
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid task status %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseStatus(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
