package mcp

import "github.com/rpggio/curriculum/internal/domain/curriculum"

type ListJourneysParams struct {
	PublishedOnly bool `json:"published_only,omitempty" jsonschema:"only list journeys whose own flag is published"`
}

type GetJourneyParams struct {
	Slug string `json:"slug" jsonschema:"journey slug, the stable external key"`
}

type ResolveLevelParams struct {
	Slug    string `json:"slug" jsonschema:"journey slug"`
	LevelID int64  `json:"level_id,omitempty" jsonschema:"requested level id; 0 or a level of another journey selects the first level"`
}

type GetActivityParams struct {
	ID int64 `json:"id" jsonschema:"activity id"`
}

type JourneySummary struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Published   bool   `json:"published"`
	Status      string `json:"status"`
	LevelCount  int    `json:"level_count"`
	LessonCount int    `json:"lesson_count"`
}

type ListJourneysResponse struct {
	Journeys []JourneySummary `json:"journeys"`
}

type JourneyResponse struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Published   bool            `json:"published"`
	Status      string          `json:"status"`
	Levels      []LevelResponse `json:"levels"`
}

type LevelResponse struct {
	ID          int64            `json:"id"`
	Order       int              `json:"order"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Published   bool             `json:"published"`
	Status      string           `json:"status"`
	Lessons     []LessonResponse `json:"lessons"`
}

type LessonResponse struct {
	ID         int64             `json:"id"`
	Order      int               `json:"order"`
	Title      string            `json:"title"`
	Objective  string            `json:"objective,omitempty"`
	Published  bool              `json:"published"`
	Status     string            `json:"status"`
	Activities []ActivitySummary `json:"activities"`
}

type ActivitySummary struct {
	ID        int64  `json:"id"`
	Order     int    `json:"order"`
	Type      string `json:"type"`
	Published bool   `json:"published"`
	Status    string `json:"status"`
	Preview   string `json:"preview"`
}

// ResolveLevelResponse carries no Level and Selected=false when the journey
// has no levels.
type ResolveLevelResponse struct {
	JourneySlug      string         `json:"journey_slug"`
	RequestedLevelID int64          `json:"requested_level_id"`
	Selected         bool           `json:"selected"`
	FellBack         bool           `json:"fell_back"`
	Level            *LevelResponse `json:"level,omitempty"`
}

type ActivityResponse struct {
	ID              int64                `json:"id"`
	LessonID        int64                `json:"lesson_id"`
	Order           int                  `json:"order"`
	Type            string               `json:"type"`
	Published       bool                 `json:"published"`
	Preview         string               `json:"preview"`
	Content         map[string]any       `json:"content"`
	JourneySlug     string               `json:"journey_slug"`
	LevelTitle      string               `json:"level_title"`
	LessonTitle     string               `json:"lesson_title"`
	Flags           curriculum.PathFlags `json:"flags"`
	LiveForLearners bool                 `json:"live_for_learners"`
}

func journeySummary(j curriculum.Journey) JourneySummary {
	return JourneySummary{
		ID:          j.ID,
		Slug:        j.Slug,
		Title:       j.Title,
		Description: j.Description,
		Published:   j.IsPublished,
		Status:      curriculum.Status(j),
		LevelCount:  len(j.Levels),
		LessonCount: j.LessonCount(),
	}
}

func journeyResponse(j curriculum.Journey) JourneyResponse {
	levels := make([]LevelResponse, 0, len(j.Levels))
	for _, level := range j.Levels {
		levels = append(levels, levelResponse(level))
	}
	return JourneyResponse{
		ID:          j.ID,
		Slug:        j.Slug,
		Title:       j.Title,
		Description: j.Description,
		Published:   j.IsPublished,
		Status:      curriculum.Status(j),
		Levels:      levels,
	}
}

func levelResponse(level curriculum.Level) LevelResponse {
	lessons := make([]LessonResponse, 0, len(level.Lessons))
	for _, lesson := range level.Lessons {
		activities := make([]ActivitySummary, 0, len(lesson.Activities))
		for _, a := range lesson.Activities {
			activities = append(activities, activitySummary(a))
		}
		lessons = append(lessons, LessonResponse{
			ID:         lesson.ID,
			Order:      lesson.Order,
			Title:      lesson.Title,
			Objective:  lesson.Objective,
			Published:  lesson.IsPublished,
			Status:     curriculum.Status(lesson),
			Activities: activities,
		})
	}
	return LevelResponse{
		ID:          level.ID,
		Order:       level.Order,
		Title:       level.Title,
		Description: level.Description,
		Published:   level.IsPublished,
		Status:      curriculum.Status(level),
		Lessons:     lessons,
	}
}

func activitySummary(a curriculum.Activity) ActivitySummary {
	return ActivitySummary{
		ID:        a.ID,
		Order:     a.Order,
		Type:      string(a.Type),
		Published: a.IsPublished,
		Status:    curriculum.Status(a),
		Preview:   curriculum.PreviewText(a),
	}
}

func activityResponse(path curriculum.Path) ActivityResponse {
	flags := path.Flags()
	a := path.Activity
	return ActivityResponse{
		ID:              a.ID,
		LessonID:        a.LessonID,
		Order:           a.Order,
		Type:            string(a.Type),
		Published:       a.IsPublished,
		Preview:         curriculum.PreviewText(a),
		Content:         curriculum.ContentFields(a.Content),
		JourneySlug:     path.Journey.Slug,
		LevelTitle:      path.Level.Title,
		LessonTitle:     path.Lesson.Title,
		Flags:           flags,
		LiveForLearners: flags.Journey && flags.Level && flags.Lesson && flags.Activity,
	}
}
