package store

import "time"

func (s *Store) GetProjects() []Project {
	return readCollection[Project](s, projectsKey)
}

func (s *Store) SetProjects(projects []Project) {
	writeJSON(s, projectsKey, projects)
}

func (s *Store) CreateProject(data Project) Project {
	now := time.Now().UTC()
	data.ID = NewID()
	data.CreatedAt = now
	data.UpdatedAt = now

	projects := s.GetProjects()
	projects = append(projects, data)
	s.SetProjects(projects)
	return data
}

func (s *Store) UpdateProject(id string, mutate func(*Project)) *Project {
	projects := s.GetProjects()
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		mutate(&projects[i])
		projects[i].ID = id
		projects[i].UpdatedAt = time.Now().UTC()
		s.SetProjects(projects)
		out := projects[i]
		return &out
	}
	return nil
}

// DeleteProject removes by id. Tasks referencing the project keep their
// dangling projectId; callers must tolerate missing lookups.
func (s *Store) DeleteProject(id string) {
	projects := s.GetProjects()
	for i := range projects {
		if projects[i].ID == id {
			s.SetProjects(append(projects[:i], projects[i+1:]...))
			return
		}
	}
}

// ProjectIndex returns projects keyed by ID, for name lookups.
func (s *Store) ProjectIndex() map[string]*Project {
	projects := s.GetProjects()
	index := make(map[string]*Project, len(projects))
	for i := range projects {
		index[projects[i].ID] = &projects[i]
	}
	return index
}

func (s *Store) GetProject(id string) *Project {
	for _, p := range s.GetProjects() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
