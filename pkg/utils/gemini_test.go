package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	t.Run("strips json code fence", func(t *testing.T) {
		raw := "```json\n{\"destination\": \"Goa\"}\n```"
		assert.Equal(t, `{"destination": "Goa"}`, CleanJSONResponse(raw))
	})

	t.Run("strips generic code fence", func(t *testing.T) {
		raw := "```\n[\"beaches\"]\n```"
		assert.Equal(t, `["beaches"]`, CleanJSONResponse(raw))
	})

	t.Run("passes through bare json", func(t *testing.T) {
		assert.Equal(t, `{"days": 3}`, CleanJSONResponse(`{"days": 3}`))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, `{"days": 3}`, CleanJSONResponse("  \n{\"days\": 3}\n  "))
	})

	t.Run("idempotent", func(t *testing.T) {
		raw := "```json\n{\"destination\": \"Goa\"}\n```"
		once := CleanJSONResponse(raw)
		assert.Equal(t, once, CleanJSONResponse(once))
	})
}
