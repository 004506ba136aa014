package curriculum

// ActivityType identifies which content payload an Activity carries.
type ActivityType string

const (
	TypeVideo    ActivityType = "VIDEO"
	TypeReading  ActivityType = "READING"
	TypeQuiz     ActivityType = "QUIZ"
	TypeSpeaking ActivityType = "SPEAKING"
)

// ActivityTypes lists the recognized activity types in display order.
var ActivityTypes = []ActivityType{TypeVideo, TypeReading, TypeQuiz, TypeSpeaking}

// Valid reports whether t is one of the recognized activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case TypeVideo, TypeReading, TypeQuiz, TypeSpeaking:
		return true
	}
	return false
}

// Journey is the top-level curriculum unit (a course).
type Journey struct {
	ID          int64   `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IsPublished bool    `json:"isPublished"`
	Levels      []Level `json:"levels"`
}

// Level is an ordered stage within a Journey.
type Level struct {
	ID          int64    `json:"id"`
	JourneyID   int64    `json:"journeyId"`
	Order       int      `json:"order"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IsPublished bool     `json:"isPublished"`
	Lessons     []Lesson `json:"lessons"`
}

// Lesson is an ordered unit of instruction within a Level.
type Lesson struct {
	ID          int64      `json:"id"`
	LevelID     int64      `json:"levelId"`
	Order       int        `json:"order"`
	Title       string     `json:"title"`
	Objective   string     `json:"objective"`
	IsPublished bool       `json:"isPublished"`
	Activities  []Activity `json:"activities"`
}

// Activity is a single learner-facing task within a Lesson.
type Activity struct {
	ID          int64        `json:"id"`
	LessonID    int64        `json:"lessonId"`
	Order       int          `json:"order"`
	Type        ActivityType `json:"type"`
	IsPublished bool         `json:"isPublished"`
	Content     Content      `json:"content"`
}

// LevelByID returns the level with the given id if it belongs to the journey.
func (j Journey) LevelByID(id int64) (Level, bool) {
	for _, level := range j.Levels {
		if level.ID == id {
			return level, true
		}
	}
	return Level{}, false
}

// LessonCount returns the number of lessons across all levels.
func (j Journey) LessonCount() int {
	n := 0
	for _, level := range j.Levels {
		n += len(level.Lessons)
	}
	return n
}
