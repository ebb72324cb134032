package middleware

import (
	"quiz-ai/internal/config"
	"quiz-ai/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys for validated request parameters.
const (
	LocalQuizType = "validated_quiz_type"
	LocalMCQCount = "validated_mcq_count"
	LocalTFCount  = "validated_tf_count"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
	quizCfg   config.QuizConfig
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(quizCfg config.QuizConfig) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
		quizCfg:   quizCfg,
	}
}

// ValidateQuizType validates the quiz_type query parameter
func (vm *ValidationMiddleware) ValidateQuizType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizType, err := vm.validator.ValidateQuizType(c.Query("quiz_type"))
		if err != nil {
			return err // Handled by the ErrorHandler middleware
		}
		c.Locals(LocalQuizType, quizType)
		return c.Next()
	}
}

// ValidateQuizCounts validates mcq_count and tf_count query parameters,
// applying the configured defaults when absent.
func (vm *ValidationMiddleware) ValidateQuizCounts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mcqCount, err := vm.validator.ValidateCount("mcq_count", c.Query("mcq_count"), vm.quizCfg.DefaultMCQCount)
		if err != nil {
			return err
		}
		tfCount, err := vm.validator.ValidateCount("tf_count", c.Query("tf_count"), vm.quizCfg.DefaultTFCount)
		if err != nil {
			return err
		}
		c.Locals(LocalMCQCount, mcqCount)
		c.Locals(LocalTFCount, tfCount)
		return c.Next()
	}
}
