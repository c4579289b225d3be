package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/studybuddy/backend/internal/db"
)

// Reference rows for the learning style endpoints. These tables are
// read-only at runtime, the dashboard only ever selects from them.

type styleRow struct {
	style string
	text  string
}

type toolRow struct {
	style       string
	name        string
	description string
}

var defaultTechniques = []styleRow{
	{"visual", "Draw mind maps and diagrams while reviewing notes"},
	{"visual", "Use color coding to organize key concepts"},
	{"auditory", "Record lectures and replay them while commuting"},
	{"auditory", "Explain topics out loud to a study partner"},
	{"reading_writing", "Rewrite lecture notes in your own words"},
	{"reading_writing", "Summarize each chapter in a short outline"},
	{"kinesthetic", "Work through practice problems by hand"},
	{"kinesthetic", "Take short walks between focused study blocks"},
}

var defaultTools = []toolRow{
	{"visual", "Miro", "Collaborative whiteboard for diagrams and mind maps"},
	{"visual", "Anki", "Flashcards with image occlusion support"},
	{"auditory", "Otter", "Lecture transcription and playback"},
	{"auditory", "Audacity", "Record and replay self-explanations"},
	{"reading_writing", "Notion", "Structured note taking and outlines"},
	{"reading_writing", "Obsidian", "Linked markdown notes"},
	{"kinesthetic", "Quizlet", "Interactive practice and matching games"},
	{"kinesthetic", "Pomofocus", "Timed study blocks with breaks"},
}

var defaultRecommendations = []styleRow{
	{"visual", "Pick groups that share annotated diagrams and slides"},
	{"auditory", "Join discussion-heavy groups that talk through problems"},
	{"reading_writing", "Look for groups that exchange written summaries"},
	{"kinesthetic", "Prefer small hands-on groups that solve problems live"},
}

// CreateDefaultData inserts the learning style reference rows if they
// are missing. Errors are collected, a partial seed does not stop
// startup.
func CreateDefaultData(ctx context.Context, pool db.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating learning style reference data...")
	var finalErr error

	for _, row := range defaultTechniques {
		_, err := pool.Exec(ctx, `
			INSERT INTO study_techniques (learning_style, technique_description)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			row.style, row.text)
		if err != nil {
			lgr.Error().Err(err).Str("style", row.style).Msg("Error seeding study technique")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, row := range defaultTools {
		_, err := pool.Exec(ctx, `
			INSERT INTO study_tools (learning_style, tool_name, tool_description)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING`,
			row.style, row.name, row.description)
		if err != nil {
			lgr.Error().Err(err).Str("style", row.style).Msg("Error seeding study tool")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, row := range defaultRecommendations {
		_, err := pool.Exec(ctx, `
			INSERT INTO study_group_recommendations (learning_style, recommendation_description)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			row.style, row.text)
		if err != nil {
			lgr.Error().Err(err).Str("style", row.style).Msg("Error seeding group recommendation")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Learning style reference data in place.")
	}
	return finalErr
}
