package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/rpggio/curriculum/internal/repository"
)

// CurriculumRepository implements curriculum.Repository for SQLite
type CurriculumRepository struct {
	db *DB
}

// NewCurriculumRepository creates a new CurriculumRepository
func NewCurriculumRepository(db *DB) *CurriculumRepository {
	return &CurriculumRepository{db: db}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SaveJourney writes a journey and its whole subtree in one transaction,
// parent before child. Any failure rolls back every row of the journey.
func (r *CurriculumRepository) SaveJourney(ctx context.Context, j *curriculum.Journey) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertJourney(ctx, tx, j); err != nil {
		return err
	}
	for i := range j.Levels {
		level := &j.Levels[i]
		if err := insertLevel(ctx, tx, level); err != nil {
			return fmt.Errorf("level %d: %w", level.ID, err)
		}
		for k := range level.Lessons {
			lesson := &level.Lessons[k]
			if err := insertLesson(ctx, tx, lesson); err != nil {
				return fmt.Errorf("lesson %d: %w", lesson.ID, err)
			}
			for m := range lesson.Activities {
				a := &lesson.Activities[m]
				if err := insertActivity(ctx, tx, a); err != nil {
					return fmt.Errorf("activity %d: %w", a.ID, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertJourney(ctx context.Context, ex execer, j *curriculum.Journey) error {
	query := `
		INSERT INTO journeys (id, slug, title, description, is_published)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := ex.ExecContext(ctx, query,
		j.ID,
		j.Slug,
		j.Title,
		j.Description,
		j.IsPublished,
	)
	if err != nil {
		return mapWriteError("create journey", err)
	}

	return nil
}

func insertLevel(ctx context.Context, ex execer, level *curriculum.Level) error {
	query := `
		INSERT INTO levels (id, journey_id, sort_order, title, description, is_published)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := ex.ExecContext(ctx, query,
		level.ID,
		level.JourneyID,
		level.Order,
		level.Title,
		level.Description,
		level.IsPublished,
	)
	if err != nil {
		return mapWriteError("create level", err)
	}

	return nil
}

func insertLesson(ctx context.Context, ex execer, lesson *curriculum.Lesson) error {
	query := `
		INSERT INTO lessons (id, level_id, sort_order, title, objective, is_published)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := ex.ExecContext(ctx, query,
		lesson.ID,
		lesson.LevelID,
		lesson.Order,
		lesson.Title,
		lesson.Objective,
		lesson.IsPublished,
	)
	if err != nil {
		return mapWriteError("create lesson", err)
	}

	return nil
}

// insertActivity stores the content encoded as JSON.
func insertActivity(ctx context.Context, ex execer, a *curriculum.Activity) error {
	content, err := curriculum.MarshalContent(a.Content)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO activities (id, lesson_id, sort_order, type, is_published, content)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = ex.ExecContext(ctx, query,
		a.ID,
		a.LessonID,
		a.Order,
		a.Type,
		a.IsPublished,
		string(content),
	)
	if err != nil {
		return mapWriteError("create activity", err)
	}

	return nil
}

// ListJourneys returns every journey with its full subtree, journeys by id
// and children by order.
func (r *CurriculumRepository) ListJourneys(ctx context.Context) ([]curriculum.Journey, error) {
	journeys, err := r.listJourneyRows(ctx)
	if err != nil {
		return nil, err
	}

	for i := range journeys {
		if err := r.loadLevels(ctx, &journeys[i]); err != nil {
			return nil, err
		}
	}

	return journeys, nil
}

// GetJourneyBySlug retrieves one journey with its full subtree
func (r *CurriculumRepository) GetJourneyBySlug(ctx context.Context, slug string) (*curriculum.Journey, error) {
	query := `
		SELECT id, slug, title, description, is_published
		FROM journeys
		WHERE slug = ?
	`

	var j curriculum.Journey
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&j.ID,
		&j.Slug,
		&j.Title,
		&j.Description,
		&j.IsPublished,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journey: %w", err)
	}

	if err := r.loadLevels(ctx, &j); err != nil {
		return nil, err
	}

	return &j, nil
}

func (r *CurriculumRepository) listJourneyRows(ctx context.Context) ([]curriculum.Journey, error) {
	query := `
		SELECT id, slug, title, description, is_published
		FROM journeys
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journeys: %w", err)
	}
	defer rows.Close()

	var journeys []curriculum.Journey
	for rows.Next() {
		var j curriculum.Journey
		if err := rows.Scan(&j.ID, &j.Slug, &j.Title, &j.Description, &j.IsPublished); err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		journeys = append(journeys, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journey rows: %w", err)
	}

	return journeys, nil
}

// loadLevels fills j.Levels, their lessons and activities with one query
// per node kind.
func (r *CurriculumRepository) loadLevels(ctx context.Context, j *curriculum.Journey) error {
	levels, err := r.listLevels(ctx, j.ID)
	if err != nil {
		return err
	}
	lessons, err := r.listLessons(ctx, j.ID)
	if err != nil {
		return err
	}
	activities, err := r.listActivities(ctx, j.ID)
	if err != nil {
		return err
	}

	for i := range lessons {
		lessons[i].Activities = activities[lessons[i].ID]
	}
	byLevel := make(map[int64][]curriculum.Lesson, len(levels))
	for _, lesson := range lessons {
		byLevel[lesson.LevelID] = append(byLevel[lesson.LevelID], lesson)
	}
	for i := range levels {
		levels[i].Lessons = byLevel[levels[i].ID]
	}

	j.Levels = levels
	return nil
}

func (r *CurriculumRepository) listLevels(ctx context.Context, journeyID int64) ([]curriculum.Level, error) {
	query := `
		SELECT id, journey_id, sort_order, title, description, is_published
		FROM levels
		WHERE journey_id = ?
		ORDER BY sort_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	var levels []curriculum.Level
	for rows.Next() {
		var level curriculum.Level
		if err := rows.Scan(
			&level.ID,
			&level.JourneyID,
			&level.Order,
			&level.Title,
			&level.Description,
			&level.IsPublished,
		); err != nil {
			return nil, fmt.Errorf("failed to scan level: %w", err)
		}
		levels = append(levels, level)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating level rows: %w", err)
	}

	return levels, nil
}

func (r *CurriculumRepository) listLessons(ctx context.Context, journeyID int64) ([]curriculum.Lesson, error) {
	query := `
		SELECT ls.id, ls.level_id, ls.sort_order, ls.title, ls.objective, ls.is_published
		FROM lessons ls
		JOIN levels lv ON lv.id = ls.level_id
		WHERE lv.journey_id = ?
		ORDER BY lv.sort_order ASC, ls.sort_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []curriculum.Lesson
	for rows.Next() {
		var lesson curriculum.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.LevelID,
			&lesson.Order,
			&lesson.Title,
			&lesson.Objective,
			&lesson.IsPublished,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}

	return lessons, nil
}

// listActivities returns the journey's activities grouped by lesson id.
func (r *CurriculumRepository) listActivities(ctx context.Context, journeyID int64) (map[int64][]curriculum.Activity, error) {
	query := `
		SELECT a.id, a.lesson_id, a.sort_order, a.type, a.is_published, a.content
		FROM activities a
		JOIN lessons ls ON ls.id = a.lesson_id
		JOIN levels lv ON lv.id = ls.level_id
		WHERE lv.journey_id = ?
		ORDER BY a.lesson_id ASC, a.sort_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	byLesson := map[int64][]curriculum.Activity{}
	for rows.Next() {
		var a curriculum.Activity
		var content string
		if err := rows.Scan(
			&a.ID,
			&a.LessonID,
			&a.Order,
			&a.Type,
			&a.IsPublished,
			&content,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Content, err = curriculum.UnmarshalContent(a.Type, []byte(content))
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", a.ID, err)
		}
		byLesson[a.LessonID] = append(byLesson[a.LessonID], a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return byLesson, nil
}
