package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerateQuizRequest(t *testing.T) {
	v := NewValidator()

	t.Run("Valid", func(t *testing.T) {
		errs := v.ValidateGenerateQuizRequest("https://en.wikipedia.org/wiki/Turing_Award")
		assert.Empty(t, errs)
	})

	t.Run("Empty", func(t *testing.T) {
		errs := v.ValidateGenerateQuizRequest("")
		require.Len(t, errs, 1)
		assert.Equal(t, "url", errs[0].Field)
	})

	t.Run("WhitespaceOnly", func(t *testing.T) {
		errs := v.ValidateGenerateQuizRequest("   ")
		require.Len(t, errs, 1)
		assert.Equal(t, "url", errs[0].Field)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		errs := v.ValidateGenerateQuizRequest("ftp://example.org/file")
		require.Len(t, errs, 1)
	})

	t.Run("NoHost", func(t *testing.T) {
		errs := v.ValidateGenerateQuizRequest("https://")
		require.Len(t, errs, 1)
	})

	t.Run("NotAURL", func(t *testing.T) {
		errs := v.ValidateGenerateQuizRequest("not a url at all")
		require.Len(t, errs, 1)
	})
}
