package curriculum

import "fmt"

// Slugs of the sample journeys.
const (
	BeginnerSlug     = "beginner-english-journey"
	IntermediateSlug = "intermediate-english-journey"
)

// BuildSampleCurriculum assembles the two sample journeys used to check the
// admin flow: a fully published beginner journey covering all four
// activity types, and a draft intermediate journey whose second level is
// a draft holding one draft lesson with one draft activity, next to
// published siblings at every depth.
//
// Ids continue from ids; reset the allocator first to get the same ids on
// every call.
func BuildSampleCurriculum(ids *Allocator) ([]Journey, error) {
	b := NewBuilder(ids)
	beginner := buildBeginnerJourney(b)
	intermediate := buildIntermediateJourney(b)
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("building sample curriculum: %w", err)
	}
	return []Journey{beginner, intermediate}, nil
}

func buildBeginnerJourney(b *Builder) Journey {
	j := b.Reserve()

	basics := b.Reserve()
	alphabet := b.Reserve()
	greetings := b.Reserve()
	numbers := b.Reserve()

	level1 := b.Level(basics, j, 1,
		"Level 1: Basics",
		"Alphabet, greetings, and simple sentences.",
		true,
		b.Lesson(alphabet, basics, 1,
			"Alphabet & Pronunciation",
			"Learn the English alphabet and basic sounds.",
			true,
			b.Activity(alphabet, 1, TypeVideo, true, VideoContent{
				VideoURL:        "https://example.com/videos/alphabet-intro",
				Transcript:      "A for Apple, B for Ball... Learn the English alphabet sounds.",
				DurationSeconds: 120,
			}),
			b.Activity(alphabet, 2, TypeQuiz, true, QuizContent{
				Question:     "Which letter comes after C?",
				Options:      []string{"B", "D", "E", "F"},
				CorrectIndex: 1,
			}),
		),
		b.Lesson(greetings, basics, 2,
			"Greetings & Introductions",
			"Say hello and introduce yourself.",
			true,
			b.Activity(greetings, 1, TypeReading, true, ReadingContent{
				PassageText: "Hello! My name is Sam. Nice to meet you. How are you today?",
				Vocabulary:  []string{"hello", "nice to meet you", "how are you"},
			}),
			b.Activity(greetings, 2, TypeSpeaking, true, SpeakingContent{
				PromptText:   "Introduce yourself: say your name, where you are from, and one thing you like.",
				SampleAnswer: "Hi, I'm Ananya. I'm from India, and I like learning languages.",
			}),
		),
		b.Lesson(numbers, basics, 3,
			"Numbers & Time",
			"Talk about numbers and telling time.",
			true,
			b.Activity(numbers, 1, TypeQuiz, true, QuizContent{
				Question:     "It is 7:30. How do you say this time in English?",
				Options:      []string{"Seven thirty", "Thirty seven", "Half past eight"},
				CorrectIndex: 0,
			}),
		),
	)

	conversation := b.Reserve()
	food := b.Reserve()
	day := b.Reserve()
	plans := b.Reserve()

	level2 := b.Level(conversation, j, 2,
		"Level 2: Everyday Conversation",
		"Speaking about daily routines and common situations.",
		true,
		b.Lesson(food, conversation, 1, "Ordering Food", "Order food and drinks politely.", true,
			b.Activity(food, 1, TypeVideo, true, VideoContent{
				VideoURL:   "https://example.com/videos/ordering-food",
				Transcript: "Can I have a coffee, please? I'd like a sandwich and a juice.",
			}),
		),
		b.Lesson(day, conversation, 2, "Talking About Your Day", "Describe your daily routine.", true,
			b.Activity(day, 1, TypeReading, true, ReadingContent{
				PassageText: "Every morning, I wake up at 7:00. I eat breakfast, then go to work.",
				Questions:   []string{"What time does the person wake up?"},
			}),
		),
		b.Lesson(plans, conversation, 3, "Making Plans", "Invite friends and make simple plans.", true,
			b.Activity(plans, 1, TypeSpeaking, true, SpeakingContent{
				PromptText: "Make plans with a friend for the weekend. Say where, when, and what you will do.",
			}),
		),
	)

	return b.Journey(j, BeginnerSlug,
		"Beginner English Journey",
		"Start learning essential English vocabulary, phrases, and pronunciation.",
		true,
		level1, level2,
	)
}

func buildIntermediateJourney(b *Builder) Journey {
	j := b.Reserve()

	grammar := b.Reserve()
	present := b.Reserve()

	level1 := b.Level(grammar, j, 1,
		"Level 1: Grammar Basics",
		"Simple present and past tense.",
		true,
		b.Lesson(present, grammar, 1, "Simple Present", "Use present tense for habits and facts.", true,
			b.Activity(present, 1, TypeVideo, true, VideoContent{
				VideoURL:   "https://example.com/videos/simple-present",
				Transcript: "I work every day. She likes coffee.",
			}),
			b.Activity(present, 2, TypeQuiz, true, QuizContent{
				Question:     "Choose the correct form: She ___ to school every day.",
				Options:      []string{"go", "goes", "going"},
				CorrectIndex: 1,
			}),
		),
	)

	writing := b.Reserve()
	email := b.Reserve()
	phone := b.Reserve()

	level2 := b.Level(writing, j, 2,
		"Level 2: Writing Practice",
		"Short paragraphs and emails.",
		false,
		b.Lesson(email, writing, 1, "Writing an Email", "Draft a short formal email.", true,
			b.Activity(email, 1, TypeReading, true, ReadingContent{
				PassageText: "Dear Sir, I am writing to inquire about...",
			}),
		),
		b.Lesson(phone, writing, 2, "Speaking: Phone Call", "Leave a short voicemail.", false,
			b.Activity(phone, 1, TypeSpeaking, false, SpeakingContent{
				PromptText: "[Draft] Leave a 30-second voicemail asking for a callback.",
			}),
		),
	)

	return b.Journey(j, IntermediateSlug,
		"Intermediate English Journey",
		"Grammar, writing, and listening practice.",
		false,
		level1, level2,
	)
}
