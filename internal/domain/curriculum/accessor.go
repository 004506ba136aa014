package curriculum

// PreviewLimit is the number of characters kept from long-form text in a
// preview.
const PreviewLimit = 50

const ellipsis = "..."

// ResolveActiveLevel returns the level of j identified by requestedLevelID,
// falling back to the journey's first level when the id is 0 or belongs to
// another journey. It reports false only when the journey has no levels.
func ResolveActiveLevel(j Journey, requestedLevelID int64) (Level, bool) {
	if requestedLevelID != 0 {
		if level, ok := j.LevelByID(requestedLevelID); ok {
			return level, true
		}
	}
	if len(j.Levels) == 0 {
		return Level{}, false
	}
	return j.Levels[0], true
}

// PreviewText summarizes an activity's content in one short line.
//
// READING and SPEAKING keep the first PreviewLimit characters and always
// end with "...", even when nothing was cut. Missing text, or a payload of
// the wrong variant, yields the type's fallback label; unknown types
// yield the type name.
func PreviewText(a Activity) string {
	content := deref(a.Content)
	switch a.Type {
	case TypeVideo:
		if c, ok := content.(VideoContent); ok && c.VideoURL != "" {
			return c.VideoURL
		}
		return "Video"
	case TypeReading:
		if c, ok := content.(ReadingContent); ok && c.PassageText != "" {
			return truncate(c.PassageText, PreviewLimit) + ellipsis
		}
		return "Reading"
	case TypeQuiz:
		if c, ok := content.(QuizContent); ok && c.Question != "" {
			return c.Question
		}
		return "Quiz"
	case TypeSpeaking:
		if c, ok := content.(SpeakingContent); ok && c.PromptText != "" {
			return truncate(c.PromptText, PreviewLimit) + ellipsis
		}
		return "Speaking"
	default:
		return string(a.Type)
	}
}

// truncate keeps at most n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
