package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanKeywords(t *testing.T) {
	got := CleanKeywords([]string{"cat!", "dog's", "42", "mat.", "", "  "})
	assert.Equal(t, []string{"cat", "dog's", "mat"}, got)
}

func TestCleanKeywordsDropsPureDigits(t *testing.T) {
	assert.Empty(t, CleanKeywords([]string{"123", "4,5", "--"}))
}

func TestConvertNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"route 66", "route sixty-six"},
		{"7 dwarfs", "seven dwarfs"},
		{"chapter 13", "chapter thirteen"},
		{"100 years", "one hundred years"},
		{"1042 km", "one thousand forty-two km"},
		{"no digits here", "no digits here"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ConvertNumbers(tc.in), tc.in)
	}
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "seven", NormalizeWord("7!"))
	assert.Equal(t, "apple", NormalizeWord("apple."))
}
