package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"prose around", "Sure! Here it is:\n{\"a\":1}\nHope that helps.", `{"a":1}`},
		{"code fence", "```json\n{\"subject\":\"Hi\"}\n```", `{"subject":"Hi"}`},
		{"nested", `x {"a":{"b":[1,2]}} y {"c":3}`, `{"a":{"b":[1,2]}}`},
		{"braces in strings", `{"body":"use } and { freely \" ok"}`, `{"body":"use } and { freely \" ok"}`},
		{"unbalanced then balanced", `{ oops {"a":1}`, `{"a":1}`},
		{"placeholder before object", `Use {name} as the placeholder. {"subject":"Hi","body":"See you"}`, `{"subject":"Hi","body":"See you"}`},
		{"balanced but not json", `{not json}`, ""},
		{"no json", "I could not produce a summary.", ""},
		{"array only", `[1,2,3]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.text))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	out, err := decodeJSON[EmailGenerationResponse]("Here you go: {\"subject\":\"Confirmed\",\"body\":\"See you\\nsoon\"}")
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", out.Subject)
	assert.Equal(t, "See you\nsoon", out.Body)

	out, err = decodeJSON[EmailGenerationResponse]("Dear {attendee}, the draft follows. {\"subject\":\"Booked\",\"body\":\"Thanks\"}")
	require.NoError(t, err)
	assert.Equal(t, "Booked", out.Subject)
	assert.Equal(t, "Thanks", out.Body)

	_, err = decodeJSON[EmailGenerationResponse]("Hello {name}, nothing structured here")
	assert.True(t, errors.Is(err, ErrNoJSONFound))

	_, err = decodeJSON[EmailGenerationResponse]("just prose, nothing else")
	assert.True(t, errors.Is(err, ErrNoJSONFound))
	assert.EqualError(t, err, "no JSON found in response")

	_, err = decodeJSON[EmailGenerationResponse]("   ")
	assert.True(t, errors.Is(err, ErrNoUsableOutput))

	_, err = decodeJSON[EmailGenerationResponse](`{"subject": 12}`)
	assert.Error(t, err)
}
