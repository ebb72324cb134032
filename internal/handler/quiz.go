package handler

import (
	"os"
	"path/filepath"
	"strings"

	"quiz-ai/internal/domain"
	"quiz-ai/internal/dto"
	"quiz-ai/internal/logger"
	"quiz-ai/internal/middleware"
	"quiz-ai/internal/service"
	"quiz-ai/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// uploadField is the multipart form field carrying the document.
const uploadField = "file"

// QuizHandler handles quiz-generation HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// saveUpload writes the uploaded file to a uniquely named temporary path.
// The returned cleanup must run on every exit path of the request.
func (h *QuizHandler) saveUpload(c *fiber.Ctx) (path string, filename string, cleanup func(), err error) {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return "", "", nil, domain.NewValidationError("multipart field 'file' is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	path = filepath.Join(os.TempDir(), "upload_"+util.NewULID()+ext)

	if err := c.SaveFile(fileHeader, path); err != nil {
		return "", "", nil, domain.NewInternalError("Failed to store uploaded file", err)
	}

	cleanup = func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Get().Warn("Failed to remove temp file",
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}
	return path, fileHeader.Filename, cleanup, nil
}

// GenerateQuiz handles POST /generate_quiz?quiz_type={mcq|tf}
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	quizType := c.Locals(middleware.LocalQuizType).(domain.QuizType)

	path, filename, cleanup, err := h.saveUpload(c)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := h.service.GenerateQuiz(c.UserContext(), path, filename, quizType)
	if err != nil {
		logger.Get().Error("Failed to generate quiz",
			zap.Error(err),
			zap.String("filename", filename),
			zap.String("quiz_type", string(quizType)),
		)
		return err
	}

	return c.JSON(result)
}

// ExtractText handles POST /extract_text
func (h *QuizHandler) ExtractText(c *fiber.Ctx) error {
	path, filename, cleanup, err := h.saveUpload(c)
	if err != nil {
		return err
	}
	defer cleanup()

	text, err := h.service.ExtractText(c.UserContext(), path, filename)
	if err != nil {
		logger.Get().Error("Failed to extract text",
			zap.Error(err),
			zap.String("filename", filename),
		)
		return err
	}

	return c.JSON(dto.ExtractTextResponse{
		Filename: filename,
		Text:     text,
	})
}

// AskAIModel handles POST /ask_ai_model?mcq_count=&tf_count=
func (h *QuizHandler) AskAIModel(c *fiber.Ctx) error {
	mcqCount := c.Locals(middleware.LocalMCQCount).(int)
	tfCount := c.Locals(middleware.LocalTFCount).(int)

	path, filename, cleanup, err := h.saveUpload(c)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := h.service.GenerateQuizSet(c.UserContext(), path, filename, mcqCount, tfCount)
	if err != nil {
		logger.Get().Error("Failed to generate quiz set",
			zap.Error(err),
			zap.String("filename", filename),
			zap.Int("mcq_count", mcqCount),
			zap.Int("tf_count", tfCount),
		)
		return err
	}

	return c.JSON(result)
}
