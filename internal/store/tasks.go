package store

import "time"

func (s *Store) GetTasks() []Task {
	return readCollection[Task](s, tasksKey)
}

func (s *Store) SetTasks(tasks []Task) {
	writeJSON(s, tasksKey, tasks)
}

// CreateTask stamps id and timestamps, derives the Completed flag from
// Status, and appends the task to the collection. The store imposes no
// title-emptiness check; that validation belongs to the form layer.
func (s *Store) CreateTask(data Task) Task {
	now := time.Now().UTC()
	data.ID = NewID()
	data.CreatedAt = now
	data.UpdatedAt = now
	if data.Status == "" {
		data.Status = StatusPending
	}
	if data.Priority == "" {
		data.Priority = PriorityMedium
	}
	if data.Tags == nil {
		data.Tags = []string{}
	}
	data.Completed = data.Status == StatusComplete

	tasks := s.GetTasks()
	tasks = append(tasks, data)
	s.SetTasks(tasks)
	return data
}

// UpdateTask applies mutate to the matching task, restamps updatedAt and
// re-derives Completed. Silent no-op if id is not found; returns the
// updated task, or nil.
func (s *Store) UpdateTask(id string, mutate func(*Task)) *Task {
	tasks := s.GetTasks()
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		mutate(&tasks[i])
		tasks[i].ID = id // id is immutable
		tasks[i].UpdatedAt = time.Now().UTC()
		tasks[i].Completed = tasks[i].Status == StatusComplete
		s.SetTasks(tasks)
		out := tasks[i]
		return &out
	}
	return nil
}

// DeleteTask removes by id with no cascade; dangling references from other
// entities are tolerated. No-op if id is not found.
func (s *Store) DeleteTask(id string) {
	tasks := s.GetTasks()
	for i := range tasks {
		if tasks[i].ID == id {
			s.SetTasks(append(tasks[:i], tasks[i+1:]...))
			return
		}
	}
}

func (s *Store) GetTask(id string) *Task {
	for _, t := range s.GetTasks() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

// ToggleTaskCompletion flips a task between complete and pending.
func (s *Store) ToggleTaskCompletion(id string) *Task {
	return s.UpdateTask(id, func(t *Task) {
		if t.Status == StatusComplete {
			t.Status = StatusPending
		} else {
			t.Status = StatusComplete
		}
	})
}

func (s *Store) ChangeTaskStatus(id string, status TaskStatus) *Task {
	return s.UpdateTask(id, func(t *Task) {
		t.Status = status
	})
}

func (s *Store) ChangeTaskPriority(id string, priority TaskPriority) *Task {
	return s.UpdateTask(id, func(t *Task) {
		t.Priority = priority
	})
}
