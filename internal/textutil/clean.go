package textutil

import (
	"strings"
	"unicode"
)

// CleanKeywords strips digits and special characters from each keyword and
// drops the ones with no letters left
func CleanKeywords(words []string) []string {
	cleaned := make([]string, 0, len(words))
	for _, word := range words {
		stripped := stripNonLetters(word)
		if stripped != "" {
			cleaned = append(cleaned, stripped)
		}
	}
	return cleaned
}

func stripNonLetters(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || r == '\'' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "'")
}

// NormalizeWord prepares a word for pronunciation drills: digits become
// spelled-out English words, everything else keeps only letters
func NormalizeWord(word string) string {
	converted := ConvertNumbers(word)
	return stripNonLetters(converted)
}

// ConvertNumbers replaces every digit run in the text with its English
// spelling, so "route 66" becomes "route sixty-six"
func ConvertNumbers(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !unicode.IsDigit(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		n := 0
		for j < len(runes) && unicode.IsDigit(runes[j]) && n < 100000 {
			n = n*10 + int(runes[j]-'0')
			j++
		}
		b.WriteString(spellNumber(n))
		i = j
	}
	return b.String()
}

var ones = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

func spellNumber(n int) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		word := tens[n/10]
		if n%10 != 0 {
			word += "-" + ones[n%10]
		}
		return word
	case n < 1000:
		word := ones[n/100] + " hundred"
		if n%100 != 0 {
			word += " " + spellNumber(n%100)
		}
		return word
	default:
		word := spellNumber(n/1000) + " thousand"
		if n%1000 != 0 {
			word += " " + spellNumber(n%1000)
		}
		return word
	}
}
