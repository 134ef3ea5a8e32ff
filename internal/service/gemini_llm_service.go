package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dang-hang/CheckPointAI/config"
	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/model"
	"github.com/dang-hang/CheckPointAI/internal/scoring"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiLLMService is the single gateway to the LLM. Every prompt the
// application sends is assembled here.
type GeminiLLMService interface {
	GradeWriting(ctx context.Context, prompt *model.WritingPrompt, sub *model.WritingSubmission) (feedback string, grade float64, err error)
	GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) ([]model.Question, error)
	AnalyzeTestResults(ctx context.Context, test *model.Test, report *scoring.Report) (string, error)
	SynthesizeProgressReport(ctx context.Context, student *model.Profile, results []model.TestResult, from, to time.Time) (string, error)
	TutorReply(ctx context.Context, message string) (string, error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiLLMService{client: model, cfg: cfg}, nil
}

func (s *geminiLLMService) generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

var gradePattern = regexp.MustCompile(`(?i)(?:grade|score):\s*(\d+(?:\.\d+)?)(?:\s*/\s*100)?`)

// parseGrade pulls a numeric grade out of free-form feedback. The model
// is told to include "Grade: N/100" but does not always comply, so an
// unparseable response falls back to 75.
func parseGrade(feedback string) float64 {
	m := gradePattern.FindStringSubmatch(feedback)
	if m == nil {
		return 75
	}
	grade, err := strconv.ParseFloat(m[1], 64)
	if err != nil || grade < 0 || grade > 100 {
		return 75
	}
	return grade
}

// extractJSON tolerates models that wrap their JSON in markdown fences.
func extractJSON(content string) string {
	trimmed := strings.TrimSpace(content)
	if idx := strings.Index(trimmed, "```json"); idx != -1 {
		rest := trimmed[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
	}
	if idx := strings.Index(trimmed, "```"); idx != -1 {
		rest := trimmed[idx+3:]
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
	}
	return trimmed
}

func (s *geminiLLMService) GradeWriting(ctx context.Context, prompt *model.WritingPrompt, sub *model.WritingSubmission) (string, float64, error) {
	var b strings.Builder
	b.WriteString("You are an expert English writing instructor. Grade student writing submissions based on the provided rubric. Provide:\n")
	b.WriteString("1. Detailed constructive feedback\n")
	b.WriteString("2. Specific strengths and areas for improvement\n")
	b.WriteString("3. A numerical grade out of 100, on its own line formatted exactly as \"Grade: N/100\"\n\n")
	b.WriteString("Be encouraging but honest. Focus on helping the student improve.\n\n")
	fmt.Fprintf(&b, "WRITING PROMPT:\n%s\n\n", prompt.Prompt)
	fmt.Fprintf(&b, "RUBRIC:\n%s\n\n", prompt.Rubric)
	fmt.Fprintf(&b, "STUDENT SUBMISSION (%d words):\n%s\n\n", sub.WordCount, sub.Content)
	b.WriteString("Please grade this submission and provide detailed feedback.")

	feedback, err := s.generate(ctx, b.String())
	if err != nil {
		log.Error().Err(err).Str("submission_id", sub.ID).Msg("GradeWriting: LLM call failed")
		return "", 0, err
	}
	return feedback, parseGrade(feedback), nil
}

func (s *geminiLLMService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) ([]model.Question, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert Cambridge curriculum question writer specializing in %s.\n", req.Subject)
	fmt.Fprintf(&b, "Your task is to generate high-quality %s questions at %s level.\n\n", req.Category, req.Level)
	fmt.Fprintf(&b, "Generate exactly %d questions.\n", req.QuestionCount)
	if req.QuestionType == "mixed" {
		b.WriteString("Mix the question types: approximately 60% multiple-choice and 40% fill-in-the-blank.\n")
	} else {
		fmt.Fprintf(&b, "ALL questions must be type: %s\n", req.QuestionType)
	}
	b.WriteString(`
CRITICAL: Return ONLY valid JSON, no markdown, no explanations. Format:
{
  "questions": [
    {
      "id": "q1",
      "type": "multiple-choice",
      "question": "The question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": "Option B",
      "explanation": "Why this answer is correct"
    },
    {
      "id": "q2",
      "type": "fill-blank",
      "question": "The question text with a blank: _______",
      "correctAnswer": "the actual answer text",
      "explanation": "Why this answer is correct"
    }
  ]
}

For MULTIPLE-CHOICE questions:
- Include exactly 4 options in the "options" array
- correctAnswer MUST BE THE EXACT TEXT of the correct option (NOT the index number)
- VARY the position of the correct answer across questions

For FILL-IN-THE-BLANK questions:
- Do NOT include an "options" field
- Make the blank clear with _______ in the question
`)
	if req.Description != "" {
		fmt.Fprintf(&b, "\nAdditional instructions: %s\n", req.Description)
	}

	content, err := s.generate(ctx, b.String())
	if err != nil {
		log.Error().Err(err).Str("subject", req.Subject).Msg("GenerateQuestions: LLM call failed")
		return nil, err
	}

	var parsed struct {
		Questions []model.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &parsed); err != nil {
		log.Error().Err(err).Msg("GenerateQuestions: failed to parse LLM response as JSON")
		return nil, fmt.Errorf("failed to parse AI response as JSON: %w", err)
	}
	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("AI response contained no questions")
	}
	for i := range parsed.Questions {
		if parsed.Questions[i].ID == "" {
			parsed.Questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
	}
	return parsed.Questions, nil
}

// displayAnswer renders a submitted value for the analysis prompt,
// resolving legacy option indices to their text.
func displayAnswer(q model.Question, ans *model.Answer) string {
	if ans == nil {
		return "(No answer)"
	}
	if ans.Kind == model.AnswerNumber && len(q.Options) > 0 {
		i := int(ans.Num)
		if i >= 0 && i < len(q.Options) {
			return q.Options[i]
		}
	}
	if s := ans.StringForm(); s != "" {
		return s
	}
	return "(No answer)"
}

func displayCorrect(q model.Question) string {
	key := q.CorrectAnswer
	if key.IsIndex && key.Index >= 0 && key.Index < len(q.Options) {
		return q.Options[key.Index]
	}
	return key.String()
}

func (s *geminiLLMService) AnalyzeTestResults(ctx context.Context, test *model.Test, report *scoring.Report) (string, error) {
	questions := test.AllQuestions()

	var digest strings.Builder
	for i, r := range report.Results {
		verdict := "✗ Incorrect"
		if r.IsCorrect {
			verdict = "✓ Correct"
		}
		q := questions[i]
		fmt.Fprintf(&digest, "\nQuestion %d: %s\nQuestion: %s\nStudent's answer: %s\nCorrect answer: %s\n",
			i+1, verdict, r.Question, displayAnswer(q, r.UserAnswer), displayCorrect(q))
	}

	pct := 0.0
	if report.TotalQuestions > 0 {
		pct = float64(report.Score) / float64(report.TotalQuestions) * 100
	}

	prompt := fmt.Sprintf(`You are a professional English teacher analyzing a student's test results.

TEST: %s
SCORE: %d/%d (%.0f%%)

QUESTION DETAILS:
%s

Please analyze the results and provide:

1. **Overall Assessment**: Comment on the student's level of understanding
2. **Strengths**: What the student did well
3. **Areas for Improvement**: Common errors and their causes
4. **Specific Advice**: 3-4 practical tips to improve
5. **Suggested Exercises**: Recommend practice methods to address weaknesses

Write in an encouraging, positive, and detailed manner.`,
		test.Title, report.Score, report.TotalQuestions, pct, digest.String())

	analysis, err := s.generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("test_id", test.ID).Msg("AnalyzeTestResults: LLM call failed")
		return "", err
	}
	return analysis, nil
}

func (s *geminiLLMService) SynthesizeProgressReport(ctx context.Context, student *model.Profile, results []model.TestResult, from, to time.Time) (string, error) {
	var history strings.Builder
	for _, r := range results {
		fmt.Fprintf(&history, "- %s | %s (%s): %d/%d (%.0f%%)\n",
			r.CompletedAt.Format("2006-01-02"), r.TestTitle, r.TestCategory, r.Score, r.TotalQuestions, r.Percentage)
	}
	if history.Len() == 0 {
		history.WriteString("(no tests completed in this period)\n")
	}

	name := student.FullName
	if name == "" {
		name = student.Email
	}

	prompt := fmt.Sprintf(`You are an experienced teacher writing a progress report for a student's guardians.

STUDENT: %s
PERIOD: %s to %s

TEST HISTORY (chronological):
%s

Write a structured progress report covering: overall trajectory, subject-area strengths and weaknesses visible in the scores, and concrete recommendations for the next study period. Keep the tone professional and encouraging. Use plain text, no markdown formatting.`,
		name, from.Format("2006-01-02"), to.Format("2006-01-02"), history.String())

	report, err := s.generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("student_id", student.ID).Msg("SynthesizeProgressReport: LLM call failed")
		return "", err
	}
	return report, nil
}

func (s *geminiLLMService) TutorReply(ctx context.Context, message string) (string, error) {
	prompt := fmt.Sprintf(`You are a professional and friendly tutor specializing in Cambridge curriculum subjects: EFL, ESL, Mathematics, Science, and Global Perspectives.

Teaching approach:
- Identify and correct errors kindly with constructive feedback
- Encourage and motivate students to keep improving
- Use specific, relatable, and easy-to-understand examples
- Provide clear, structured explanations
- Always maintain a positive, patient, and enthusiastic tone

IMPORTANT: Format your responses using plain text. Do not use markdown formatting like ** for bold or * for italics. Use clear paragraph breaks and simple numbered or bulleted lists when needed.

Student's message:
%s`, message)

	reply, err := s.generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("TutorReply: LLM call failed")
		return "", err
	}
	return reply, nil
}
