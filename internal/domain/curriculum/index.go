package curriculum

import "fmt"

// Index resolves nodes of one tree by id. It is built once after the tree
// is complete and never changes; children refer to parents by id only.
type Index struct {
	journeys   []Journey
	bySlug     map[string]int
	journeyPos map[int64]int
	levels     map[int64]Level
	lessons    map[int64]Lesson
	activities map[int64]Activity
}

// Path is the ancestry of one activity.
type Path struct {
	Journey  Journey
	Level    Level
	Lesson   Lesson
	Activity Activity
}

// Flags returns each node's own publication flag along the path.
func (p Path) Flags() PathFlags {
	return PathFlags{
		Journey:  IsVisibleToLearner(p.Journey),
		Level:    IsVisibleToLearner(p.Level),
		Lesson:   IsVisibleToLearner(p.Lesson),
		Activity: IsVisibleToLearner(p.Activity),
	}
}

// NewIndex indexes journeys, checking that ids are unique across every
// node kind, slugs are unique, and each back-reference names the parent
// the node is attached to.
func NewIndex(journeys []Journey) (*Index, error) {
	idx := &Index{
		journeys:   journeys,
		bySlug:     make(map[string]int, len(journeys)),
		journeyPos: make(map[int64]int, len(journeys)),
		levels:     map[int64]Level{},
		lessons:    map[int64]Lesson{},
		activities: map[int64]Activity{},
	}
	seen := map[int64]string{}
	claim := func(kind string, id int64) error {
		if prev, ok := seen[id]; ok {
			return &ValidationError{Kind: kind, Field: "id", Reason: fmt.Sprintf("id %d already used by a %s", id, prev)}
		}
		seen[id] = kind
		return nil
	}

	for pos, j := range journeys {
		if err := claim("journey", j.ID); err != nil {
			return nil, err
		}
		if _, dup := idx.bySlug[j.Slug]; dup {
			return nil, &ValidationError{Kind: "journey", Field: "slug", Reason: fmt.Sprintf("slug %q already used", j.Slug)}
		}
		idx.bySlug[j.Slug] = pos
		idx.journeyPos[j.ID] = pos

		for _, level := range j.Levels {
			if err := claim("level", level.ID); err != nil {
				return nil, err
			}
			if level.JourneyID != j.ID {
				return nil, backRefError("level", level.ID, "journeyId", level.JourneyID, j.ID)
			}
			idx.levels[level.ID] = level

			for _, lesson := range level.Lessons {
				if err := claim("lesson", lesson.ID); err != nil {
					return nil, err
				}
				if lesson.LevelID != level.ID {
					return nil, backRefError("lesson", lesson.ID, "levelId", lesson.LevelID, level.ID)
				}
				idx.lessons[lesson.ID] = lesson

				for _, a := range lesson.Activities {
					if err := claim("activity", a.ID); err != nil {
						return nil, err
					}
					if a.LessonID != lesson.ID {
						return nil, backRefError("activity", a.ID, "lessonId", a.LessonID, lesson.ID)
					}
					idx.activities[a.ID] = a
				}
			}
		}
	}
	return idx, nil
}

func backRefError(kind string, id int64, field string, got, want int64) error {
	return &ValidationError{Kind: kind, Field: field, Reason: fmt.Sprintf("%s %d points at %d but sits under %d", kind, id, got, want)}
}

// Journeys returns the indexed journeys in their original order.
func (idx *Index) Journeys() []Journey {
	return idx.journeys
}

// Journey looks up a journey by id.
func (idx *Index) Journey(id int64) (Journey, bool) {
	pos, ok := idx.journeyPos[id]
	if !ok {
		return Journey{}, false
	}
	return idx.journeys[pos], true
}

// JourneyBySlug looks up a journey by its stable external key.
func (idx *Index) JourneyBySlug(slug string) (Journey, bool) {
	pos, ok := idx.bySlug[slug]
	if !ok {
		return Journey{}, false
	}
	return idx.journeys[pos], true
}

// Level looks up a level by id.
func (idx *Index) Level(id int64) (Level, bool) {
	level, ok := idx.levels[id]
	return level, ok
}

// Lesson looks up a lesson by id.
func (idx *Index) Lesson(id int64) (Lesson, bool) {
	lesson, ok := idx.lessons[id]
	return lesson, ok
}

// Activity looks up an activity by id.
func (idx *Index) Activity(id int64) (Activity, bool) {
	a, ok := idx.activities[id]
	return a, ok
}

// Path resolves an activity together with its lesson, level and journey.
func (idx *Index) Path(activityID int64) (Path, bool) {
	a, ok := idx.activities[activityID]
	if !ok {
		return Path{}, false
	}
	lesson := idx.lessons[a.LessonID]
	level := idx.levels[lesson.LevelID]
	journey, _ := idx.Journey(level.JourneyID)
	return Path{Journey: journey, Level: level, Lesson: lesson, Activity: a}, true
}

// Size returns the number of indexed nodes of every kind.
func (idx *Index) Size() int {
	return len(idx.journeys) + len(idx.levels) + len(idx.lessons) + len(idx.activities)
}

// MaxID returns the largest id in the tree, or 0 when it is empty.
func (idx *Index) MaxID() int64 {
	var m int64
	for _, j := range idx.journeys {
		m = max(m, j.ID)
	}
	for id := range idx.levels {
		m = max(m, id)
	}
	for id := range idx.lessons {
		m = max(m, id)
	}
	for id := range idx.activities {
		m = max(m, id)
	}
	return m
}
