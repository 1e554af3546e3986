package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"satoru/internal/domain/entity"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
)

const maxFallbackSummaryLength = 1000

type summaryPayload struct {
	Summary   string           `json:"summary"`
	KeyPoints []string         `json:"key_points"`
	Insights  []string         `json:"insights"`
	Examples  []entity.Example `json:"examples"`
}

type flashcardPayload struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty string  `json:"difficulty"`
}

// stripCodeFences removes a surrounding markdown code block, with or without a language tag.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if nl := strings.IndexByte(text, '\n'); nl >= 0 && !strings.ContainsAny(text[:nl], "{[") {
			text = text[nl+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

// parseSummary never fails outright: unparseable output becomes the summary text
// itself and the returned error only reports the parse problem.
func parseSummary(text string) (*service.StudyMaterial, error) {
	var payload summaryPayload
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &payload); err != nil || payload.Summary == "" {
		if err == nil {
			err = errors.New("summary field missing")
		}

		return &service.StudyMaterial{
			Summary:   truncateRunes(strings.TrimSpace(text), maxFallbackSummaryLength),
			KeyPoints: []string{"Unable to extract key points"},
			Insights:  []string{"Unable to extract insights"},
			Examples:  []entity.Example{},
		}, errors.Wrap(err, "parse summary")
	}

	material := &service.StudyMaterial{
		Summary:   payload.Summary,
		KeyPoints: nonEmpty(payload.KeyPoints),
		Insights:  nonEmpty(payload.Insights),
		Examples:  make([]entity.Example, 0, len(payload.Examples)),
	}
	for _, ex := range payload.Examples {
		if ex.Title == "" && ex.Description == "" {
			continue
		}
		material.Examples = append(material.Examples, ex)
	}

	return material, nil
}

// parseFlashcards always returns exactly count cards. Cards missing a question or answer
// are dropped, then the set is padded with review placeholders or truncated.
func parseFlashcards(text string, count int) ([]service.GeneratedFlashcard, error) {
	var payload []flashcardPayload
	parseErr := json.Unmarshal([]byte(stripCodeFences(text)), &payload)
	if parseErr != nil {
		payload = nil
	}

	cards := make([]service.GeneratedFlashcard, 0, count)
	for _, p := range payload {
		if len(cards) == count {
			break
		}
		if p.Question == nil || p.Answer == nil {
			continue
		}
		cards = append(cards, service.GeneratedFlashcard{
			Question:   *p.Question,
			Answer:     *p.Answer,
			Difficulty: entity.ParseDifficulty(p.Difficulty),
		})
	}

	for len(cards) < count {
		question := fmt.Sprintf("Review question %d", len(cards)+1)
		answer := "Please review the document for more details"
		if parseErr != nil {
			question = fmt.Sprintf("Question %d from document", len(cards)+1)
			answer = "Please review the document for this answer"
		}
		cards = append(cards, service.GeneratedFlashcard{
			Question:   question,
			Answer:     answer,
			Difficulty: entity.DifficultyMedium,
		})
	}

	return cards, errors.Wrap(parseErr, "parse flashcards")
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
