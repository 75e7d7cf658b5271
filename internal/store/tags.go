package store

func (s *Store) GetTags() []Tag {
	return readCollection[Tag](s, tagsKey)
}

func (s *Store) SetTags(tags []Tag) {
	writeJSON(s, tagsKey, tags)
}

func (s *Store) CreateTag(data Tag) Tag {
	data.ID = NewID()
	tags := s.GetTags()
	tags = append(tags, data)
	s.SetTags(tags)
	return data
}

func (s *Store) UpdateTag(id string, mutate func(*Tag)) *Tag {
	tags := s.GetTags()
	for i := range tags {
		if tags[i].ID != id {
			continue
		}
		mutate(&tags[i])
		tags[i].ID = id
		s.SetTags(tags)
		out := tags[i]
		return &out
	}
	return nil
}

func (s *Store) GetTag(id string) *Tag {
	for _, t := range s.GetTags() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

func (s *Store) DeleteTag(id string) {
	tags := s.GetTags()
	for i := range tags {
		if tags[i].ID == id {
			s.SetTags(append(tags[:i], tags[i+1:]...))
			return
		}
	}
}
