package curriculum

import (
	"encoding/json"
	"fmt"
)

// Content is the type-specific payload of an Activity. The set of
// implementations is closed: one struct per ActivityType.
type Content interface {
	Type() ActivityType
	isContent()
}

// VideoContent is the payload of a VIDEO activity.
type VideoContent struct {
	VideoURL        string  `json:"videoUrl" yaml:"videoUrl" validate:"required,url"`
	Transcript      string  `json:"transcript,omitempty" yaml:"transcript,omitempty"`
	DurationSeconds float64 `json:"durationSeconds,omitempty" yaml:"durationSeconds,omitempty" validate:"gte=0"`
}

// ReadingContent is the payload of a READING activity.
type ReadingContent struct {
	PassageText string   `json:"passageText" yaml:"passageText" validate:"required"`
	Vocabulary  []string `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty" validate:"dive,required"`
	Questions   []string `json:"questions,omitempty" yaml:"questions,omitempty" validate:"dive,required"`
}

// QuizContent is the payload of a QUIZ activity. CorrectIndex must point
// into Options.
type QuizContent struct {
	Question     string   `json:"question" yaml:"question" validate:"required"`
	Options      []string `json:"options" yaml:"options" validate:"min=2,dive,required"`
	CorrectIndex int      `json:"correctIndex" yaml:"correctIndex"`
}

// SpeakingContent is the payload of a SPEAKING activity.
type SpeakingContent struct {
	PromptText   string `json:"promptText" yaml:"promptText" validate:"required"`
	SampleAnswer string `json:"sampleAnswer,omitempty" yaml:"sampleAnswer,omitempty"`
}

func (VideoContent) Type() ActivityType    { return TypeVideo }
func (ReadingContent) Type() ActivityType  { return TypeReading }
func (QuizContent) Type() ActivityType     { return TypeQuiz }
func (SpeakingContent) Type() ActivityType { return TypeSpeaking }

func (VideoContent) isContent()    {}
func (ReadingContent) isContent()  {}
func (QuizContent) isContent()     {}
func (SpeakingContent) isContent() {}

// newContent returns an empty payload for t, ready to be decoded into.
func newContent(t ActivityType) (Content, error) {
	switch t {
	case TypeVideo:
		return &VideoContent{}, nil
	case TypeReading:
		return &ReadingContent{}, nil
	case TypeQuiz:
		return &QuizContent{}, nil
	case TypeSpeaking:
		return &SpeakingContent{}, nil
	default:
		return nil, &ValidationError{Kind: "activity", Field: "type", Reason: fmt.Sprintf("unknown activity type %q", t)}
	}
}

// deref turns the pointer returned by newContent back into a value so
// that callers always see value payloads.
func deref(c Content) Content {
	switch v := c.(type) {
	case *VideoContent:
		if v != nil {
			return *v
		}
	case *ReadingContent:
		if v != nil {
			return *v
		}
	case *QuizContent:
		if v != nil {
			return *v
		}
	case *SpeakingContent:
		if v != nil {
			return *v
		}
	default:
		return c
	}
	return nil
}

// MarshalContent encodes a payload as JSON for storage.
func MarshalContent(c Content) ([]byte, error) {
	if c == nil {
		return nil, &ValidationError{Kind: "activity", Field: "content", Reason: "missing content"}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal %s content: %w", c.Type(), err)
	}
	return data, nil
}

// UnmarshalContent decodes a stored JSON payload for the given type.
func UnmarshalContent(t ActivityType, data []byte) (Content, error) {
	c, err := newContent(t)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, &ValidationError{Kind: "activity", Field: "content", Reason: fmt.Sprintf("decode %s content: %v", t, err)}
	}
	return deref(c), nil
}

// ContentFields flattens a payload into a generic map, the shape the
// admin surfaces render.
func ContentFields(c Content) map[string]any {
	if c == nil {
		return map[string]any{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}
