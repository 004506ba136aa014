package curriculum

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type fixtureFile struct {
	Journeys []fixtureJourney `yaml:"journeys"`
}

type fixtureJourney struct {
	Slug        string         `yaml:"slug"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description,omitempty"`
	Published   bool           `yaml:"published"`
	Levels      []fixtureLevel `yaml:"levels,omitempty"`
}

type fixtureLevel struct {
	Order       int             `yaml:"order,omitempty"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description,omitempty"`
	Published   bool            `yaml:"published"`
	Lessons     []fixtureLesson `yaml:"lessons,omitempty"`
}

type fixtureLesson struct {
	Order      int               `yaml:"order,omitempty"`
	Title      string            `yaml:"title"`
	Objective  string            `yaml:"objective,omitempty"`
	Published  bool              `yaml:"published"`
	Activities []fixtureActivity `yaml:"activities,omitempty"`
}

type fixtureActivity struct {
	Order     int          `yaml:"order,omitempty"`
	Type      ActivityType `yaml:"type"`
	Published bool         `yaml:"published"`
	Content   yaml.Node    `yaml:"content"`
}

// LoadFixture reads a YAML curriculum description and builds it with b.
// Omitted orders default to the node's position among its siblings.
func LoadFixture(r io.Reader, b *Builder) ([]Journey, error) {
	var file fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	journeys := make([]Journey, 0, len(file.Journeys))
	for _, fj := range file.Journeys {
		j := b.Reserve()
		levels := make([]Level, 0, len(fj.Levels))
		for li, fl := range fj.Levels {
			levelID := b.Reserve()
			lessons := make([]Lesson, 0, len(fl.Lessons))
			for si, fs := range fl.Lessons {
				lessonID := b.Reserve()
				activities := make([]Activity, 0, len(fs.Activities))
				for ai, fa := range fs.Activities {
					content, err := decodeFixtureContent(fa)
					if err != nil {
						return nil, fmt.Errorf("journey %q level %d lesson %d activity %d: %w", fj.Slug, li+1, si+1, ai+1, err)
					}
					activities = append(activities, b.Activity(lessonID, orderOr(fa.Order, ai), fa.Type, fa.Published, content))
				}
				lessons = append(lessons, b.Lesson(lessonID, levelID, orderOr(fs.Order, si), fs.Title, fs.Objective, fs.Published, activities...))
			}
			levels = append(levels, b.Level(levelID, j, orderOr(fl.Order, li), fl.Title, fl.Description, fl.Published, lessons...))
		}
		journeys = append(journeys, b.Journey(j, fj.Slug, fj.Title, fj.Description, fj.Published, levels...))
		if err := b.Err(); err != nil {
			return nil, fmt.Errorf("journey %q: %w", fj.Slug, err)
		}
	}
	return journeys, nil
}

func decodeFixtureContent(fa fixtureActivity) (Content, error) {
	c, err := newContent(fa.Type)
	if err != nil {
		return nil, err
	}
	if fa.Content.Kind == 0 {
		return nil, &ValidationError{Kind: "activity", Field: "content", Reason: "missing content"}
	}
	// Node.Decode ignores KnownFields, so the payload gets its own strict
	// decoder.
	raw, err := yaml.Marshal(&fa.Content)
	if err != nil {
		return nil, fmt.Errorf("re-encode %s content: %w", fa.Type, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, &ValidationError{Kind: "activity", Field: "content", Reason: err.Error()}
	}
	return deref(c), nil
}

func orderOr(order, position int) int {
	if order != 0 {
		return order
	}
	return position + 1
}

// WriteFixture writes journeys in the format read by LoadFixture. Ids are
// not written; loading the output allocates fresh ones.
func WriteFixture(w io.Writer, journeys []Journey) error {
	file := fixtureFile{Journeys: make([]fixtureJourney, 0, len(journeys))}
	for _, j := range journeys {
		fj := fixtureJourney{Slug: j.Slug, Title: j.Title, Description: j.Description, Published: j.IsPublished}
		for _, level := range j.Levels {
			fl := fixtureLevel{Order: level.Order, Title: level.Title, Description: level.Description, Published: level.IsPublished}
			for _, lesson := range level.Lessons {
				fs := fixtureLesson{Order: lesson.Order, Title: lesson.Title, Objective: lesson.Objective, Published: lesson.IsPublished}
				for _, a := range lesson.Activities {
					fa := fixtureActivity{Order: a.Order, Type: a.Type, Published: a.IsPublished}
					if err := fa.Content.Encode(a.Content); err != nil {
						return fmt.Errorf("encode activity %d content: %w", a.ID, err)
					}
					fs.Activities = append(fs.Activities, fa)
				}
				fl.Lessons = append(fl.Lessons, fs)
			}
			fj.Levels = append(fj.Levels, fl)
		}
		file.Journeys = append(file.Journeys, fj)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	return enc.Close()
}
