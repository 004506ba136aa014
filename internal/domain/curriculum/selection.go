package curriculum

// Selection is the admin browser's current journey and level. It has a
// single owner and changes only on explicit select calls.
type Selection struct {
	journeys  []Journey
	journeyID int64
	levelID   int64
}

// NewSelection selects the first journey and its first level.
func NewSelection(journeys []Journey) *Selection {
	s := &Selection{journeys: journeys}
	if len(journeys) > 0 {
		s.SelectJourney(journeys[0].ID)
	}
	return s
}

// Journeys returns the selectable journeys.
func (s *Selection) Journeys() []Journey {
	return s.journeys
}

// SelectJourney makes id the current journey and moves the level selection
// to that journey's first level. Unknown ids leave the selection unchanged.
func (s *Selection) SelectJourney(id int64) bool {
	for _, j := range s.journeys {
		if j.ID != id {
			continue
		}
		s.journeyID = id
		s.levelID = 0
		if len(j.Levels) > 0 {
			s.levelID = j.Levels[0].ID
		}
		return true
	}
	return false
}

// SelectLevel records the requested level. The request is resolved
// against the current journey when read.
func (s *Selection) SelectLevel(id int64) {
	s.levelID = id
}

// Journey returns the current journey.
func (s *Selection) Journey() (Journey, bool) {
	for _, j := range s.journeys {
		if j.ID == s.journeyID {
			return j, true
		}
	}
	return Journey{}, false
}

// Level returns the effective level: the requested one if it belongs to the
// current journey, else that journey's first level.
func (s *Selection) Level() (Level, bool) {
	j, ok := s.Journey()
	if !ok {
		return Level{}, false
	}
	return ResolveActiveLevel(j, s.levelID)
}

// JourneyPosition returns the index of the current journey, or -1.
func (s *Selection) JourneyPosition() int {
	for i, j := range s.journeys {
		if j.ID == s.journeyID {
			return i
		}
	}
	return -1
}

// LevelPosition returns the index of the effective level within the
// current journey, or -1.
func (s *Selection) LevelPosition() int {
	j, ok := s.Journey()
	if !ok {
		return -1
	}
	level, ok := ResolveActiveLevel(j, s.levelID)
	if !ok {
		return -1
	}
	for i, l := range j.Levels {
		if l.ID == level.ID {
			return i
		}
	}
	return -1
}
