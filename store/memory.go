package store

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"TaskTrackerService/models"

	"github.com/pkg/errors"
)

// SeedCount is the number of tasks generated when an empty store is listed.
const SeedCount = 10

var _ TaskStore = (*MemoryTaskStore)(nil)

// StatusPicker chooses the status of a generated task.
type StatusPicker func() models.Status

// RandomStatus picks a status uniformly at random.
func RandomStatus() models.Status {
	return models.Statuses[rand.IntN(len(models.Statuses))]
}

// MemoryTaskStore holds tasks in insertion order.
// Every method holds mu for its whole read-modify-write.
type MemoryTaskStore struct {
	mu     sync.Mutex
	tasks  []models.Task
	lastID int
	pick   StatusPicker
}

type Option func(*MemoryTaskStore)

// WithStatusPicker replaces the random status source used by seeding.
func WithStatusPicker(pick StatusPicker) Option {
	return func(s *MemoryTaskStore) {
		s.pick = pick
	}
}

func NewMemoryTaskStore(opts ...Option) *MemoryTaskStore {
	s := &MemoryTaskStore{pick: RandomStatus}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a copy of every task. An empty store is seeded first with
// SeedCount generated tasks; only List seeds.
func (s *MemoryTaskStore) List() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) == 0 {
		s.seed(SeedCount)
	}

	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *MemoryTaskStore) Get(id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, notFound(id)
	}
	return s.tasks[i], nil
}

// Create appends a task with the next id. Titles need not be unique.
func (s *MemoryTaskStore) Create(title, description string, status models.Status) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(title, description, status)
}

// Update overwrites title, description and status of a task in place.
func (s *MemoryTaskStore) Update(id int, title, description string, status models.Status) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, notFound(id)
	}

	task := &s.tasks[i]
	task.Title = title
	task.Description = description
	task.Status = status
	return *task, nil
}

// Delete removes the first task with the given id, keeping the order of the others.
func (s *MemoryTaskStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

func (s *MemoryTaskStore) seed(n int) {
	for i := 1; i <= n; i++ {
		s.insert(fmt.Sprintf("Задача%d", i), fmt.Sprintf("описание%d", i), s.pick())
	}
}

func (s *MemoryTaskStore) insert(title, description string, status models.Status) models.Task {
	s.lastID++
	task := models.Task{
		Id:          s.lastID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	s.tasks = append(s.tasks, task)
	return task
}

func (s *MemoryTaskStore) indexOf(id int) int {
	for i, task := range s.tasks {
		if task.Id == id {
			return i
		}
	}
	return -1
}

func notFound(id int) error {
	return errors.Wrapf(ErrTaskNotFound, "task id %d", id)
}
