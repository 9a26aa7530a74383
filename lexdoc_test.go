package lexdoc_test

import (
	"errors"
	"testing"

	"lexdoc"

	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := lexdoc.Errorf(lexdoc.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, lexdoc.ENOTFOUND, lexdoc.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", lexdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lexdoc.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lexdoc.EINTERNAL, lexdoc.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lexdoc.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An internal error has occurred.", lexdoc.ErrorMessage(errors.New("boom")))
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := &lexdoc.Document{Name: "law.pdf", URL: "http://example.com/law.pdf"}
		assert.NoError(t, doc.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		doc := &lexdoc.Document{URL: "http://example.com/law.pdf"}
		assert.Equal(t, lexdoc.EINVALID, lexdoc.ErrorCode(doc.Validate()))
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		doc := &lexdoc.Document{Name: "law.pdf"}
		assert.Equal(t, lexdoc.EINVALID, lexdoc.ErrorCode(doc.Validate()))
	})
}

func TestChatMessage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid message", func(t *testing.T) {
		t.Parallel()

		msg := &lexdoc.ChatMessage{Prompt: "co to jest?", Answer: "tekst"}
		assert.NoError(t, msg.Validate())
	})

	t.Run("missing prompt", func(t *testing.T) {
		t.Parallel()

		msg := &lexdoc.ChatMessage{Answer: "tekst"}
		assert.Equal(t, lexdoc.EINVALID, lexdoc.ErrorCode(msg.Validate()))
	})

	t.Run("missing answer", func(t *testing.T) {
		t.Parallel()

		msg := &lexdoc.ChatMessage{Prompt: "co to jest?"}
		assert.Equal(t, lexdoc.EINVALID, lexdoc.ErrorCode(msg.Validate()))
	})
}
