package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"quiz-ai/internal/cache"
	"quiz-ai/internal/config"
	"quiz-ai/internal/domain"
	"quiz-ai/internal/dto"
	"quiz-ai/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuizService defines the interface for quiz-generation operations
type QuizService interface {
	// ExtractText returns the document's text or fails with
	// UNSUPPORTED_FORMAT / EMPTY_CONTENT.
	ExtractText(ctx context.Context, path string, filename string) (string, error)

	// GenerateQuiz produces questions of a single type. Generation
	// failures are reported inside the response's output list, not as an
	// HTTP error; only extraction failures surface as errors.
	GenerateQuiz(ctx context.Context, path string, filename string, quizType domain.QuizType) (*dto.GenerateQuizResponse, error)

	// GenerateQuizSet fans out one LLM call per requested type, joins all
	// outcomes and merges the parsed results into one document.
	GenerateQuizSet(ctx context.Context, path string, filename string, mcqCount, tfCount int) (*dto.QuizSetResponse, error)
}

// quizService implements QuizService
type quizService struct {
	generator domain.QuizGenerator
	extractor domain.TextExtractor
	cache     domain.Cache // nil when no cache is configured
	cfg       *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	generator domain.QuizGenerator,
	extractor domain.TextExtractor,
	responseCache domain.Cache,
	cfg *config.Config,
) QuizService {
	return &quizService{
		generator: generator,
		extractor: extractor,
		cache:     responseCache,
		cfg:       cfg,
	}
}

// ExtractText implements QuizService
func (s *quizService) ExtractText(ctx context.Context, path string, filename string) (string, error) {
	text, err := s.extractor.Extract(path, filename)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.NewEmptyContentError()
	}
	return text, nil
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, path string, filename string, quizType domain.QuizType) (*dto.GenerateQuizResponse, error) {
	text, err := s.ExtractText(ctx, path, filename)
	if err != nil {
		return nil, err
	}

	count := s.cfg.Quiz.DefaultMCQCount
	if quizType == domain.TypeTrueFalse {
		count = s.cfg.Quiz.DefaultTFCount
	}

	output := s.generateOutput(ctx, quizType, text, count, filename)
	return &dto.GenerateQuizResponse{
		Document:     filename,
		QuestionType: string(quizType),
		Output:       output,
	}, nil
}

// generateOutput runs one generation and renders either the parsed
// document or an error marker list, never failing the request.
func (s *quizService) generateOutput(ctx context.Context, quizType domain.QuizType, text string, count int, filename string) json.RawMessage {
	prompt := domain.BuildPrompt(quizType, text, count, filename)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return marshalGenerationError(err)
	}

	doc, err := domain.ParseGeneratedDocument(raw)
	if err != nil {
		return marshalGenerationError(domain.NewInvalidGeneratedJSONError(quizType, err))
	}

	doc.Questions = s.validQuestions(quizType, doc.Questions)
	out, err := json.Marshal(doc)
	if err != nil {
		return marshalGenerationError(domain.NewInternalError("failed to encode generated quiz", err))
	}
	return out
}

func marshalGenerationError(err error) json.RawMessage {
	out, _ := json.Marshal([]dto.GenerationError{{Error: "AI service error: " + err.Error()}})
	return out
}

// generation carries one fan-out call from dispatch to terminal state.
type generation struct {
	quizType domain.QuizType
	prompt   string
	raw      string
	err      error
}

// GenerateQuizSet implements QuizService
func (s *quizService) GenerateQuizSet(ctx context.Context, path string, filename string, mcqCount, tfCount int) (*dto.QuizSetResponse, error) {
	text, err := s.ExtractText(ctx, path, filename)
	if err != nil {
		return nil, err
	}

	response := dto.NewQuizSetResponse(filename, mcqCount, tfCount)

	var generations []*generation
	if mcqCount > 0 {
		generations = append(generations, &generation{
			quizType: domain.TypeMCQ,
			prompt:   domain.BuildMCQPrompt(text, mcqCount, filename),
		})
	}
	if tfCount > 0 {
		generations = append(generations, &generation{
			quizType: domain.TypeTrueFalse,
			prompt:   domain.BuildTFPrompt(text, tfCount, filename),
		})
	}

	// Nothing requested: no LLM calls are made.
	if len(generations) == 0 {
		return response, nil
	}

	if cached, ok := s.cachedQuizSet(ctx, text, mcqCount, tfCount); ok {
		return cached, nil
	}

	// Fan out one call per requested type. The goroutines never return an
	// error, so a failure in one type cannot cancel the other; every call
	// reaches a terminal state before Wait returns.
	g := new(errgroup.Group)
	for _, gen := range generations {
		gen := gen
		g.Go(func() error {
			gen.raw, gen.err = s.generator.Generate(ctx, gen.prompt)
			return nil
		})
	}
	_ = g.Wait()

	// Transport failures take precedence over parse failures, judged in
	// dispatch order so the outcome is deterministic.
	for _, gen := range generations {
		if gen.err != nil {
			return nil, gen.err
		}
	}

	for _, gen := range generations {
		doc, err := domain.ParseGeneratedDocument(gen.raw)
		if err != nil {
			logger.Get().Error("Generated payload is not valid JSON",
				zap.String("quiz_type", string(gen.quizType)),
				zap.Error(err),
			)
			return nil, domain.NewInvalidGeneratedJSONError(gen.quizType, err)
		}

		questions := s.validQuestions(gen.quizType, doc.Questions)
		switch gen.quizType {
		case domain.TypeMCQ:
			response.Questions.MultipleChoice = questions
		case domain.TypeTrueFalse:
			response.Questions.TrueFalse = questions
		}
	}

	s.storeQuizSet(ctx, text, mcqCount, tfCount, response)
	return response, nil
}

// validQuestions drops questions that fail schema validation, preserving
// the order of the ones that pass. Valid questions are passed through
// field-exact.
func (s *quizService) validQuestions(quizType domain.QuizType, questions []domain.Question) []domain.Question {
	valid := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if err := q.Validate(quizType); err != nil {
			logger.Get().Warn("Dropping incomplete generated question",
				zap.String("quiz_type", string(quizType)),
				zap.String("question", q.Question),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, q)
	}
	return valid
}

func (s *quizService) quizSetCacheKey(text string, mcqCount, tfCount int) string {
	return cache.GenerateCacheKey("quiz", "set", cache.HashContent(text),
		strconv.Itoa(mcqCount), strconv.Itoa(tfCount))
}

// cachedQuizSet returns a previously generated response for identical
// content and counts. Cache errors degrade to a miss.
func (s *quizService) cachedQuizSet(ctx context.Context, text string, mcqCount, tfCount int) (*dto.QuizSetResponse, bool) {
	if s.cache == nil {
		return nil, false
	}
	val, err := s.cache.Get(ctx, s.quizSetCacheKey(text, mcqCount, tfCount))
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Quiz set cache lookup failed", zap.Error(err))
		}
		return nil, false
	}
	var cached dto.QuizSetResponse
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		logger.Get().Warn("Discarding corrupt quiz set cache entry", zap.Error(err))
		return nil, false
	}
	return &cached, true
}

// storeQuizSet caches a successful response; failures are logged only.
func (s *quizService) storeQuizSet(ctx context.Context, text string, mcqCount, tfCount int, response *dto.QuizSetResponse) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	key := s.quizSetCacheKey(text, mcqCount, tfCount)
	if err := s.cache.Set(ctx, key, string(payload), s.cfg.Quiz.CacheTTL); err != nil {
		logger.Get().Warn("Failed to cache quiz set", zap.String("key", key), zap.Error(err))
	}
}
