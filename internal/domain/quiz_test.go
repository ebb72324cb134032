package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuizType(t *testing.T) {
	t.Run("ValidTypes", func(t *testing.T) {
		mcq, err := ParseQuizType("mcq")
		assert.NoError(t, err)
		assert.Equal(t, TypeMCQ, mcq)

		tf, err := ParseQuizType("tf")
		assert.NoError(t, err)
		assert.Equal(t, TypeTrueFalse, tf)
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := ParseQuizType("essay")
		require.Error(t, err)
		domainErr, ok := err.(*DomainError)
		require.True(t, ok)
		assert.Equal(t, CodeValidation, domainErr.Code)
	})
}

func TestQuestionValidate_MCQ(t *testing.T) {
	valid := Question{
		Question: "Which task predicts numerical values?",
		Options: []string{
			"A) Classification",
			"B) Clustering",
			"C) Regression",
			"D) Association Rule Mining",
		},
		Answer: "C) Regression",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate(TypeMCQ))
	})

	t.Run("AnswerMustMatchOptionVerbatim", func(t *testing.T) {
		q := valid
		q.Answer = "Regression" // missing the label prefix
		assert.Error(t, q.Validate(TypeMCQ))
	})

	t.Run("RequiresExactlyFourOptions", func(t *testing.T) {
		q := valid
		q.Options = q.Options[:3]
		assert.Error(t, q.Validate(TypeMCQ))
	})

	t.Run("EmptyQuestionText", func(t *testing.T) {
		q := valid
		q.Question = "   "
		assert.Error(t, q.Validate(TypeMCQ))
	})
}

func TestQuestionValidate_TrueFalse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		q := Question{Question: "Clustering groups data without predefined labels.", Answer: "True"}
		assert.NoError(t, q.Validate(TypeTrueFalse))

		q.Answer = "False"
		assert.NoError(t, q.Validate(TypeTrueFalse))
	})

	t.Run("AnswerMustBeLiteralTrueOrFalse", func(t *testing.T) {
		q := Question{Question: "Regression is used for categorical outputs.", Answer: "false"}
		assert.Error(t, q.Validate(TypeTrueFalse))

		q.Answer = "yes"
		assert.Error(t, q.Validate(TypeTrueFalse))
	})

	t.Run("OptionsNotAllowed", func(t *testing.T) {
		q := Question{Question: "Q", Answer: "True", Options: []string{"True", "False"}}
		assert.Error(t, q.Validate(TypeTrueFalse))
	})
}

func TestParseGeneratedDocument(t *testing.T) {
	payload := `{
		"file_name": "lecture.pdf",
		"question_type": "Multiple Choice",
		"questions": [
			{"question": "Q1", "options": ["A) a", "B) b", "C) c", "D) d"], "answer": "A) a"},
			{"question": "Q2", "options": ["A) w", "B) x", "C) y", "D) z"], "answer": "C) y"}
		]
	}`

	t.Run("PlainJSON", func(t *testing.T) {
		doc, err := ParseGeneratedDocument(payload)
		require.NoError(t, err)
		assert.Equal(t, "lecture.pdf", doc.FileName)
		require.Len(t, doc.Questions, 2)
		// Insertion order must be preserved.
		assert.Equal(t, "Q1", doc.Questions[0].Question)
		assert.Equal(t, "Q2", doc.Questions[1].Question)
	})

	t.Run("FencedJSON", func(t *testing.T) {
		doc, err := ParseGeneratedDocument("```json\n" + payload + "\n```")
		require.NoError(t, err)
		assert.Len(t, doc.Questions, 2)
	})

	t.Run("UnknownTopLevelKeysIgnored", func(t *testing.T) {
		doc, err := ParseGeneratedDocument(`{"file_name":"f","question_type":"t","questions":[],"model_notes":"ignored"}`)
		require.NoError(t, err)
		assert.Empty(t, doc.Questions)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := ParseGeneratedDocument("Sure! Here are your questions: ...")
		assert.Error(t, err)
	})
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("  {\"a\":1}  "))
}
