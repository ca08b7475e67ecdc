package topic

// Store is an immutable, ordered collection of topic records.
type Store struct {
	title   string
	about   string
	sides   SideLabels
	records []Record
}

// NewStore copies ds into a new store. Empty labels fall back to the defaults.
func NewStore(ds Dataset) *Store {
	s := &Store{
		title:   ds.Title,
		about:   ds.About,
		sides:   ds.Sides,
		records: make([]Record, len(ds.Topics)),
	}
	for i, r := range ds.Topics {
		s.records[i] = r.clone()
	}
	if s.title == "" {
		s.title = DefaultTitle
	}
	if s.sides.Friends.Title == "" {
		s.sides.Friends.Title = DefaultFriendsTitle
	}
	if s.sides.Source.Title == "" {
		s.sides.Source.Title = DefaultSourceTitle
	}
	return s
}

// Title returns the page title.
func (s *Store) Title() string { return s.title }

// About returns the markdown copy for the about dialog.
func (s *Store) About() string { return s.about }

// Label returns the column heading for side.
func (s *Store) Label(side Side) SideLabel {
	if side == SideSource {
		return s.sides.Source
	}
	return s.sides.Friends
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Records returns the records in display order. The result is a copy.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.clone()
	}
	return out
}

// FindByID returns the first record whose identifier equals id. A miss is the
// normal state before anything is selected.
func (s *Store) FindByID(id string) (Record, bool) {
	for _, r := range s.records {
		if ID(r.Name) == id {
			return r.clone(), true
		}
	}
	return Record{}, false
}

// Dataset returns a copy of the document the store was built from, with
// defaults applied.
func (s *Store) Dataset() Dataset {
	return Dataset{
		Title:  s.title,
		About:  s.about,
		Sides:  s.sides,
		Topics: s.Records(),
	}
}
