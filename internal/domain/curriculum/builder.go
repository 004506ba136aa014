package curriculum

import (
	"fmt"
	"sort"
)

// Builder constructs curriculum nodes. Ids come from the builder's
// allocator. Parents are built after their children, so a parent's id is
// taken up front with Reserve and passed both to the children (as their
// back-reference) and to the parent constructor.
//
// The first validation failure is kept and every later call becomes a
// no-op returning a zero node; check Err before using the result.
type Builder struct {
	ids *Allocator
	err error
}

// NewBuilder returns a builder drawing ids from ids. A nil allocator
// gets a fresh one.
func NewBuilder(ids *Allocator) *Builder {
	if ids == nil {
		ids = NewAllocator()
	}
	return &Builder{ids: ids}
}

// Err returns the first validation failure, if any.
func (b *Builder) Err() error {
	return b.err
}

// Reserve allocates the id of a parent node that will be constructed once
// its children exist.
func (b *Builder) Reserve() int64 {
	return b.ids.Next()
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Activity builds an activity under lessonID. The payload must match t.
func (b *Builder) Activity(lessonID int64, order int, t ActivityType, published bool, content Content) Activity {
	if b.err != nil {
		return Activity{}
	}
	if err := checkOrder("activity", order); err != nil {
		b.fail(err)
		return Activity{}
	}
	if err := ValidateContent(t, content); err != nil {
		b.fail(err)
		return Activity{}
	}
	return Activity{
		ID:          b.ids.Next(),
		LessonID:    lessonID,
		Order:       order,
		Type:        t,
		IsPublished: published,
		Content:     deref(content),
	}
}

// Lesson builds the lesson with the reserved id under levelID.
func (b *Builder) Lesson(id, levelID int64, order int, title, objective string, published bool, activities ...Activity) Lesson {
	if b.err != nil {
		return Lesson{}
	}
	if err := b.checkNode("lesson", id, order, title); err != nil {
		b.fail(err)
		return Lesson{}
	}
	children := make([]Activity, len(activities))
	copy(children, activities)
	for _, a := range children {
		if a.LessonID != id {
			b.fail(&ValidationError{Kind: "activity", Field: "lessonId", Reason: fmt.Sprintf("activity %d points at lesson %d, attached to %d", a.ID, a.LessonID, id)})
			return Lesson{}
		}
	}
	if err := sortSiblings("activity", children, func(a Activity) int { return a.Order }); err != nil {
		b.fail(err)
		return Lesson{}
	}
	return Lesson{
		ID:          id,
		LevelID:     levelID,
		Order:       order,
		Title:       title,
		Objective:   objective,
		IsPublished: published,
		Activities:  children,
	}
}

// Level builds the level with the reserved id under journeyID.
func (b *Builder) Level(id, journeyID int64, order int, title, description string, published bool, lessons ...Lesson) Level {
	if b.err != nil {
		return Level{}
	}
	if err := b.checkNode("level", id, order, title); err != nil {
		b.fail(err)
		return Level{}
	}
	children := make([]Lesson, len(lessons))
	copy(children, lessons)
	for _, l := range children {
		if l.LevelID != id {
			b.fail(&ValidationError{Kind: "lesson", Field: "levelId", Reason: fmt.Sprintf("lesson %d points at level %d, attached to %d", l.ID, l.LevelID, id)})
			return Level{}
		}
	}
	if err := sortSiblings("lesson", children, func(l Lesson) int { return l.Order }); err != nil {
		b.fail(err)
		return Level{}
	}
	return Level{
		ID:          id,
		JourneyID:   journeyID,
		Order:       order,
		Title:       title,
		Description: description,
		IsPublished: published,
		Lessons:     children,
	}
}

// Journey builds the journey with the reserved id.
func (b *Builder) Journey(id int64, slug, title, description string, published bool, levels ...Level) Journey {
	if b.err != nil {
		return Journey{}
	}
	if err := requireText("journey", "slug", slug); err != nil {
		b.fail(err)
		return Journey{}
	}
	if err := b.checkNode("journey", id, 1, title); err != nil {
		b.fail(err)
		return Journey{}
	}
	children := make([]Level, len(levels))
	copy(children, levels)
	for _, l := range children {
		if l.JourneyID != id {
			b.fail(&ValidationError{Kind: "level", Field: "journeyId", Reason: fmt.Sprintf("level %d points at journey %d, attached to %d", l.ID, l.JourneyID, id)})
			return Journey{}
		}
	}
	if err := sortSiblings("level", children, func(l Level) int { return l.Order }); err != nil {
		b.fail(err)
		return Journey{}
	}
	return Journey{
		ID:          id,
		Slug:        slug,
		Title:       title,
		Description: description,
		IsPublished: published,
		Levels:      children,
	}
}

func (b *Builder) checkNode(kind string, id int64, order int, title string) error {
	if id <= 0 || id > b.ids.Peek() {
		return &ValidationError{Kind: kind, Field: "id", Reason: fmt.Sprintf("id %d was not reserved from this builder", id)}
	}
	if err := checkOrder(kind, order); err != nil {
		return err
	}
	return requireText(kind, "title", title)
}

func checkOrder(kind string, order int) error {
	if order < 1 {
		return &ValidationError{Kind: kind, Field: "order", Reason: fmt.Sprintf("order %d must be 1 or greater", order)}
	}
	return nil
}

// sortSiblings orders a sibling group ascending and rejects duplicate orders.
func sortSiblings[T any](kind string, nodes []T, order func(T) int) error {
	sort.SliceStable(nodes, func(i, j int) bool { return order(nodes[i]) < order(nodes[j]) })
	for i := 1; i < len(nodes); i++ {
		if order(nodes[i]) == order(nodes[i-1]) {
			return &ValidationError{Kind: kind, Field: "order", Reason: fmt.Sprintf("duplicate order %d among siblings", order(nodes[i]))}
		}
	}
	return nil
}
