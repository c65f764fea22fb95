package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/hireai/hireai/config"
	"github.com/hireai/hireai/internal/fingerprint"
	"github.com/hireai/hireai/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

const aptitudeQuestionCount = 20

// AIService is the boundary to the generative scoring provider. Identical
// inputs yield identical outputs: every call pins temperature to zero and
// screening additionally derives a content-based seed.
type AIService interface {
	ScreenResume(ctx context.Context, resumeText, jobDescription string) (*model.ScreeningAnalysis, error)
	GenerateInterviewQuestions(ctx context.Context, candidateName, role string) ([]model.InterviewQuestion, error)
	EvaluateResponse(ctx context.Context, question, answer string) (*model.AnswerEvaluation, error)
	GenerateAptitudeTest(ctx context.Context, role string) ([]model.AptitudeQuestion, error)
}

type geminiAIService struct {
	client *genai.Client
	cfg    *config.Config
}

func NewGeminiAIService(cfg *config.Config) (AIService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. AI service will be non-functional.")
		return &geminiAIService{cfg: cfg}, nil
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.GeminiApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiAIService{client: client, cfg: cfg}, nil
}

func (s *geminiAIService) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}
	resp, err := s.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text, nil
}

// requireFields rejects responses that omit any required key instead of
// trusting field presence in loosely-typed model output.
func requireFields(raw string, required ...string) error {
	if !gjson.Valid(raw) {
		return fmt.Errorf("response is not valid JSON")
	}
	var missing []string
	for _, field := range required {
		if !gjson.Get(raw, field).Exists() {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("response missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (s *geminiAIService) ScreenResume(ctx context.Context, resumeText, jobDescription string) (*model.ScreeningAnalysis, error) {
	// Seed derived strictly from the job description and resume so identical
	// submissions score identically.
	seedString := strings.ToLower(strings.TrimSpace(jobDescription)) + "_" + strings.TrimSpace(resumeText)
	seed := int32(fingerprint.Seed(seedString))

	prompt := fmt.Sprintf(`Acting as a deterministic and objective technical recruiter, perform a deep analysis of the following resume against the job requirements.

CRITICAL INSTRUCTION:
1. Your analysis must be consistent. Identical resumes for the same job must yield identical scores.
2. All scores MUST be integers between 0 and 100.
3. Evaluate strictly based on the provided text.

Job Requirements: %s
Resume Content: %s`, jobDescription, resumeText)

	intField := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeInteger, Description: desc}
	}
	strField := &genai.Schema{Type: genai.TypeString}

	raw, err := s.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0)),
		Seed:             genai.Ptr(seed),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"overallScore":            intField("Final match score (0-100)"),
				"technicalScore":          intField("Technical proficiency (0-100)"),
				"communicationScore":      intField("Communication clarity (0-100)"),
				"problemSolvingScore":     intField("Logic and reasoning (0-100)"),
				"technicalReasoning":      strField,
				"communicationReasoning":  strField,
				"problemSolvingReasoning": strField,
				"summary":                 strField,
				"strengths":               {Type: genai.TypeArray, Items: strField},
				"weaknesses":              {Type: genai.TypeArray, Items: strField},
			},
			Required: []string{
				"overallScore", "summary", "technicalScore", "communicationScore",
				"problemSolvingScore", "technicalReasoning", "communicationReasoning",
				"problemSolvingReasoning",
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if err := requireFields(raw,
		"overallScore", "summary", "technicalScore", "communicationScore",
		"problemSolvingScore", "technicalReasoning", "communicationReasoning",
		"problemSolvingReasoning",
	); err != nil {
		log.Warn().Err(err).Msg("ScreenResume: schema mismatch in AI response")
		return nil, fmt.Errorf("screening response rejected: %w", err)
	}

	var analysis model.ScreeningAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("screening response rejected: %w", err)
	}
	analysis.OverallScore = clampScore(analysis.OverallScore)
	analysis.TechnicalScore = clampScore(analysis.TechnicalScore)
	analysis.CommunicationScore = clampScore(analysis.CommunicationScore)
	analysis.ProblemSolvingScore = clampScore(analysis.ProblemSolvingScore)
	return &analysis, nil
}

func (s *geminiAIService) GenerateInterviewQuestions(ctx context.Context, candidateName, role string) ([]model.InterviewQuestion, error) {
	prompt := fmt.Sprintf("Generate 5 relevant interview questions for %s applying for the role of %s.", candidateName, role)

	raw, err := s.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0)),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question": {Type: genai.TypeString},
					"category": {Type: genai.TypeString},
					"intent":   {Type: genai.TypeString},
				},
				Required: []string{"question"},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
		return nil, fmt.Errorf("question generation response rejected: expected a JSON array")
	}
	var questions []model.InterviewQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("question generation response rejected: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("question generation returned an empty list")
	}
	return questions, nil
}

func (s *geminiAIService) EvaluateResponse(ctx context.Context, question, answer string) (*model.AnswerEvaluation, error) {
	prompt := fmt.Sprintf(`Evaluate the following interview response out of 100.
Question: %s
Response: %s`, question, answer)

	raw, err := s.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0)),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":                {Type: genai.TypeInteger},
				"feedback":             {Type: genai.TypeString},
				"clarity":              {Type: genai.TypeString},
				"conciseness":          {Type: genai.TypeString},
				"relevance":            {Type: genai.TypeString},
				"suggestedImprovement": {Type: genai.TypeString},
			},
			Required: []string{"score", "feedback", "clarity", "conciseness", "relevance"},
		},
	})
	if err != nil {
		return nil, err
	}

	if err := requireFields(raw, "score", "feedback", "clarity", "conciseness", "relevance"); err != nil {
		log.Warn().Err(err).Msg("EvaluateResponse: schema mismatch in AI response")
		return nil, fmt.Errorf("evaluation response rejected: %w", err)
	}

	var eval model.AnswerEvaluation
	if err := json.Unmarshal([]byte(raw), &eval); err != nil {
		return nil, fmt.Errorf("evaluation response rejected: %w", err)
	}
	eval.Score = clampScore(int(math.Round(float64(eval.Score))))
	return &eval, nil
}

func (s *geminiAIService) GenerateAptitudeTest(ctx context.Context, role string) ([]model.AptitudeQuestion, error) {
	prompt := fmt.Sprintf("Generate %d multiple-choice aptitude questions for a %s candidate, covering Logical Reasoning, Quantitative Aptitude, Verbal Ability and Technical Knowledge. Each question has exactly 4 options and one correct answer index.", aptitudeQuestionCount, role)

	raw, err := s.generate(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0)),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":            {Type: genai.TypeInteger},
					"question":      {Type: genai.TypeString},
					"category":      {Type: genai.TypeString},
					"options":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"correctAnswer": {Type: genai.TypeInteger},
				},
				Required: []string{"id", "question", "options", "correctAnswer"},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
		return nil, fmt.Errorf("aptitude generation response rejected: expected a JSON array")
	}
	var questions []model.AptitudeQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("aptitude generation response rejected: %w", err)
	}
	for i, q := range questions {
		if len(q.Options) == 0 || q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("aptitude question %d rejected: correct answer index out of range", i)
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("aptitude generation returned an empty list")
	}
	return questions, nil
}
