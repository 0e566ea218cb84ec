package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"TaskTrackerService/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysDone() models.Status { return models.StatusDone }

func TestListSeedsEmptyStore(t *testing.T) {
	s := NewMemoryTaskStore(WithStatusPicker(alwaysDone))

	tasks := s.List()
	require.Len(t, tasks, SeedCount)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.Id)
		assert.Equal(t, fmt.Sprintf("Задача%d", i+1), task.Title)
		assert.Equal(t, fmt.Sprintf("описание%d", i+1), task.Description)
		assert.Equal(t, models.StatusDone, task.Status)
	}

	assert.Len(t, s.List(), SeedCount, "a second list must not seed again")
}

func TestListSeedsAgainOnceEmptied(t *testing.T) {
	s := NewMemoryTaskStore(WithStatusPicker(alwaysDone))
	for _, task := range s.List() {
		require.NoError(t, s.Delete(task.Id))
	}

	tasks := s.List()
	require.Len(t, tasks, SeedCount)
	assert.Equal(t, SeedCount+1, tasks[0].Id, "ids are never reused")
}

func TestRandomStatusIsValid(t *testing.T) {
	s := NewMemoryTaskStore()
	for _, task := range s.List() {
		assert.True(t, task.Status.IsValid())
	}
}

func TestCreateDoesNotSeed(t *testing.T) {
	s := NewMemoryTaskStore()

	task := s.Create("A", "B", models.StatusTodo)
	assert.Equal(t, 1, task.Id)

	tasks := s.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, task, tasks[0])
}

func TestCreateThenGet(t *testing.T) {
	s := NewMemoryTaskStore()

	created := s.Create("A", "B", models.StatusTodo)
	got, err := s.Get(created.Id)
	require.NoError(t, err)
	assert.Equal(t, models.Task{Id: created.Id, Title: "A", Description: "B", Status: models.StatusTodo}, got)
}

func TestDuplicateTitlesAllowed(t *testing.T) {
	s := NewMemoryTaskStore()

	first := s.Create("same", "", models.StatusTodo)
	second := s.Create("same", "", models.StatusTodo)
	assert.NotEqual(t, first.Id, second.Id)
}

func TestIDsStrictlyIncreaseAcrossDeletes(t *testing.T) {
	s := NewMemoryTaskStore()

	last := 0
	for i := 0; i < 20; i++ {
		task := s.Create(fmt.Sprintf("t%d", i), "", models.StatusTodo)
		assert.Greater(t, task.Id, last)
		last = task.Id
		if i%3 == 0 {
			require.NoError(t, s.Delete(task.Id))
		}
	}
}

func TestGetMissing(t *testing.T) {
	s := NewMemoryTaskStore()

	_, err := s.Get(1)
	assert.True(t, errors.Is(err, ErrTaskNotFound))
}

func TestUpdate(t *testing.T) {
	s := NewMemoryTaskStore()
	created := s.Create("A", "B", models.StatusTodo)

	updated, err := s.Update(created.Id, "C", "", models.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, models.Task{Id: created.Id, Title: "C", Description: "", Status: models.StatusDone}, updated)

	got, err := s.Get(created.Id)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateMissing(t *testing.T) {
	s := NewMemoryTaskStore()

	_, err := s.Update(99999, "A", "B", models.StatusDone)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Empty(t, s.tasks, "update must not seed")
}

func TestDeleteKeepsOthers(t *testing.T) {
	s := NewMemoryTaskStore()
	a := s.Create("a", "", models.StatusTodo)
	b := s.Create("b", "", models.StatusDone)
	c := s.Create("c", "", models.StatusTodo)

	require.NoError(t, s.Delete(b.Id))

	_, err := s.Get(b.Id)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Equal(t, []models.Task{a, c}, s.List())

	assert.ErrorIs(t, s.Delete(b.Id), ErrTaskNotFound)
}

func TestListReturnsCopy(t *testing.T) {
	s := NewMemoryTaskStore()
	s.Create("a", "", models.StatusTodo)

	tasks := s.List()
	tasks[0].Title = "changed"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	s := NewMemoryTaskStore()

	const n = 100
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Create("t", "", models.StatusTodo).Id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
