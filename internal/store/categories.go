package store

func (s *Store) GetCategories() []Category {
	return readCollection[Category](s, categoriesKey)
}

func (s *Store) SetCategories(categories []Category) {
	writeJSON(s, categoriesKey, categories)
}

func (s *Store) CreateCategory(data Category) Category {
	data.ID = NewID()
	categories := s.GetCategories()
	categories = append(categories, data)
	s.SetCategories(categories)
	return data
}

func (s *Store) UpdateCategory(id string, mutate func(*Category)) *Category {
	categories := s.GetCategories()
	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		mutate(&categories[i])
		categories[i].ID = id
		s.SetCategories(categories)
		out := categories[i]
		return &out
	}
	return nil
}

func (s *Store) GetCategory(id string) *Category {
	for _, c := range s.GetCategories() {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

func (s *Store) DeleteCategory(id string) {
	categories := s.GetCategories()
	for i := range categories {
		if categories[i].ID == id {
			s.SetCategories(append(categories[:i], categories[i+1:]...))
			return
		}
	}
}
