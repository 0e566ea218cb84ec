// Package handlers provides the HTTP request handlers for TaskTrackerService.
//
// This package contains the handlers for the task resource (list, get, create,
// update and delete) and the index page. Handlers read and write the task
// collection through a store.TaskStore, validate request bodies with the
// validator from the validation package, count calls and errors with
// Prometheus and log every request with logrus.
//
// For the available endpoints, please refer to the individual handler function documentation.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"TaskTrackerService/commands"
	"TaskTrackerService/metrics"
	"TaskTrackerService/response"
	"TaskTrackerService/store"
	"TaskTrackerService/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	indexMessage    = "Главная страница"
	deleteMessage   = "Successful task deletion"
	notFoundMessage = "Task not found"
)

// TaskHandler serves the task endpoints.
type TaskHandler struct {
	store    store.TaskStore
	validate *validator.Validate
	metrics  *metrics.Metrics
	log      *logrus.Logger
}

func NewTaskHandler(taskStore store.TaskStore, m *metrics.Metrics, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		store:    taskStore,
		validate: validation.New(),
		metrics:  m,
		log:      log,
	}
}

// IndexHandler returns the greeting of the service.
//
// Example response:
// {"message": "Главная страница"}
func (h *TaskHandler) IndexHandler(res http.ResponseWriter, req *http.Request) {
	h.write(res, req, "/", "index", http.StatusOK, response.Message{Message: indexMessage})
}

// ListTasksHandler returns every task in insertion order.
// The first call on an empty store seeds it with ten generated tasks.
//
// Example request:
// GET /tasks
//
// Example response:
//
//	[
//	  {"id": 1, "title": "Задача1", "description": "описание1", "status": "выполнена"},
//	  {"id": 2, "title": "Задача2", "description": "описание2", "status": "не выполнена"},
//	  ...
//	]
func (h *TaskHandler) ListTasksHandler(res http.ResponseWriter, req *http.Request) {
	tasks := h.store.List()
	h.log.WithFields(logrus.Fields{
		"task operation": "get all tasks",
		"request":        "GET /tasks",
		"count":          len(tasks),
	}).Info("Processing request")
	h.write(res, req, "/tasks", "get all tasks", http.StatusOK, tasks)
}

// GetTaskHandler returns the task with the id given in the URL.
//
// Example request:
// GET /tasks/1
//
// Example response:
// {"id": 1, "title": "Задача1", "description": "описание1", "status": "выполнена"}
//
// It responds 404 when no task carries the id and 422 when the id is not an integer.
func (h *TaskHandler) GetTaskHandler(res http.ResponseWriter, req *http.Request) {
	const operation = "get task by id"
	id, ok := h.taskID(res, req, operation)
	if !ok {
		return
	}
	task, err := h.store.Get(id)
	if err != nil {
		h.fail(res, req, "/tasks/{id}", operation, err)
		return
	}
	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"task id":        id,
		"request":        "GET /tasks/{id}",
	}).Info("Processing request")
	h.write(res, req, "/tasks/{id}", operation, http.StatusOK, task)
}

// CreateTaskHandler creates a task from the request body and returns it with
// its assigned id. An id in the body is ignored.
//
// Example request body:
// {"title": "A", "description": "B", "status": "не выполнена"}
//
// Example response:
// {"id": 11, "title": "A", "description": "B", "status": "не выполнена"}
//
// Missing title, description or status, or an unknown status, respond 422.
func (h *TaskHandler) CreateTaskHandler(res http.ResponseWriter, req *http.Request) {
	const operation = "create a task"
	cmd, ok := h.decode(res, req, "/tasks", operation)
	if !ok {
		return
	}
	status, err := cmd.ParsedStatus()
	if err != nil {
		h.fail(res, req, "/tasks", operation, err)
		return
	}
	task := h.store.Create(cmd.Title, cmd.DescriptionValue(), status)
	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"task id":        task.Id,
		"request":        "POST /tasks",
	}).Info("Processing request")
	h.write(res, req, "/tasks", operation, http.StatusOK, task)
}

// UpdateTaskHandler overwrites title, description and status of the task with
// the id given in the URL. The id itself never changes.
//
// Example request:
// PUT /tasks/11
// {"title": "C", "description": "", "status": "выполнена"}
//
// Example response:
// {"id": 11, "title": "C", "description": "", "status": "выполнена"}
//
// The body is validated first, so an invalid body responds 422 even for an
// unknown id. An unknown id with a valid body responds 404.
func (h *TaskHandler) UpdateTaskHandler(res http.ResponseWriter, req *http.Request) {
	const operation = "update a task"
	id, ok := h.taskID(res, req, operation)
	if !ok {
		return
	}
	cmd, ok := h.decode(res, req, "/tasks/{id}", operation)
	if !ok {
		return
	}
	status, err := cmd.ParsedStatus()
	if err != nil {
		h.fail(res, req, "/tasks/{id}", operation, err)
		return
	}
	task, err := h.store.Update(id, cmd.Title, cmd.DescriptionValue(), status)
	if err != nil {
		h.fail(res, req, "/tasks/{id}", operation, err)
		return
	}
	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"task id":        id,
		"request":        "PUT /tasks/{id}",
	}).Info("Processing request")
	h.write(res, req, "/tasks/{id}", operation, http.StatusOK, task)
}

// DeleteTaskHandler removes the task with the id given in the URL.
//
// Example request:
// DELETE /tasks/11
//
// Example response:
// {"message": "Successful task deletion"}
func (h *TaskHandler) DeleteTaskHandler(res http.ResponseWriter, req *http.Request) {
	const operation = "delete a task"
	id, ok := h.taskID(res, req, operation)
	if !ok {
		return
	}
	if err := h.store.Delete(id); err != nil {
		h.fail(res, req, "/tasks/{id}", operation, err)
		return
	}
	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"task id":        id,
		"request":        "DELETE /tasks/{id}",
	}).Info("Processing request")
	h.write(res, req, "/tasks/{id}", operation, http.StatusOK, response.Message{Message: deleteMessage})
}

// taskID parses the {id} URL parameter, responding 422 when it is not an integer.
func (h *TaskHandler) taskID(res http.ResponseWriter, req *http.Request, operation string) (int, bool) {
	raw := chi.URLParam(req, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.metrics.Error("/tasks/{id}")
		h.log.WithFields(logrus.Fields{
			"task operation": operation,
			"request":        req.Method + " /tasks/{id}",
			"id":             raw,
		}).Error("Invalid task ID")
		h.respond(res, http.StatusUnprocessableEntity, "Validation failed", validation.IDError(raw))
		return 0, false
	}
	return id, true
}

// decode reads and validates a TaskCommand, responding 422 on failure.
func (h *TaskHandler) decode(res http.ResponseWriter, req *http.Request, endpoint, operation string) (commands.TaskCommand, bool) {
	var cmd commands.TaskCommand
	err := json.NewDecoder(req.Body).Decode(&cmd)
	if err == nil {
		err = h.validate.Struct(cmd)
	}
	if err != nil {
		h.metrics.Error(endpoint)
		h.log.WithFields(logrus.Fields{
			"task operation": operation,
			"request":        req.Method + " " + endpoint,
		}).Error("Invalid request body inputs: " + err.Error())
		h.respond(res, http.StatusUnprocessableEntity, "Validation failed", validation.FieldErrors(err)...)
		return cmd, false
	}
	return cmd, true
}

// fail maps err to its status code, logs it and writes the error response.
func (h *TaskHandler) fail(res http.ResponseWriter, req *http.Request, endpoint, operation string, err error) {
	status, detail := statusFor(err)
	h.metrics.Error(endpoint)
	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"request":        req.Method + " " + endpoint,
	}).Error(err.Error())
	h.respond(res, status, detail)
}

func (h *TaskHandler) write(res http.ResponseWriter, req *http.Request, endpoint, operation string, status int, body any) {
	if err := response.WriteJSON(res, status, body); err != nil {
		h.metrics.Error(endpoint)
		h.log.WithFields(logrus.Fields{
			"task operation": operation,
			"request":        req.Method + " " + endpoint,
		}).Error("Error encoding response: " + err.Error())
	}
}

func (h *TaskHandler) respond(res http.ResponseWriter, status int, detail string, fields ...response.FieldError) {
	if err := response.WriteError(res, status, detail, fields...); err != nil {
		h.log.Error("Error encoding error response: " + err.Error())
	}
}

// statusFor maps an error to the HTTP status and the detail shown to the client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound, notFoundMessage
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
