// Package humanizer strips common AI writing patterns from voiceover text
// so it reads like a person wrote it.
package humanizer

import (
	"regexp"
	"strings"
)

// Phrases that signal AI-generated text.
var hedgePhrases = compileAll(
	`\bIt'?s worth noting that\b`,
	`\bInterestingly enough\b`,
	`\bInterestingly,\b`,
	`\bIt'?s important to note that\b`,
	`\bIt'?s important to remember that\b`,
	`\bIn today'?s world\b`,
	`\bIn today'?s digital age\b`,
	`\bAt the end of the day\b`,
	`\bThe reality is\b`,
	`\bHere'?s the thing\b`,
	`\bLet'?s be honest\b`,
	`\bLet'?s dive in\b`,
	`\bLet'?s explore\b`,
	`\bWithout further ado\b`,
	`\bIn this day and age\b`,
	`\bIt goes without saying\b`,
	`\bAs we all know\b`,
	`\bNeedless to say\b`,
)

// Formulaic transitions at sentence starts.
var transitions = compileAll(
	`^So, `,
	`^Now, `,
	`^Well, `,
	`^Moving on,? `,
	`^Let'?s move on to `,
	`^Now let'?s `,
	`^Speaking of which,? `,
	`^That being said,? `,
	`^With that in mind,? `,
	`^Having said that,? `,
)

// Overly formal constructions replaced with contractions.
var contractions = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bdo not\b`), "don't"},
	{regexp.MustCompile(`(?i)\bcannot\b`), "can't"},
	{regexp.MustCompile(`(?i)\bwill not\b`), "won't"},
	{regexp.MustCompile(`(?i)\bshould not\b`), "shouldn't"},
	{regexp.MustCompile(`(?i)\bwould not\b`), "wouldn't"},
	{regexp.MustCompile(`(?i)\bcould not\b`), "couldn't"},
	{regexp.MustCompile(`(?i)\bI am\b`), "I'm"},
	{regexp.MustCompile(`(?i)\bthey are\b`), "they're"},
	{regexp.MustCompile(`(?i)\bwe are\b`), "we're"},
	{regexp.MustCompile(`(?i)\bit is\b`), "it's"},
	{regexp.MustCompile(`(?i)\bthat is\b`), "that's"},
}

var (
	multiSpace  = regexp.MustCompile(`  +`)
	doublePoint = regexp.MustCompile(`\. \.`)
	doubleComma = regexp.MustCompile(`,\s*,`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// Clean removes AI writing patterns from a single text.
func Clean(text string) string {
	if text == "" {
		return text
	}

	result := text

	for _, re := range hedgePhrases {
		result = re.ReplaceAllString(result, "")
	}

	// Strip formulaic transitions at the start of each sentence.
	sentences := strings.Split(result, ". ")
	cleaned := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		s := strings.TrimSpace(sentence)
		for _, re := range transitions {
			s = re.ReplaceAllString(s, "")
		}
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	result = strings.Join(cleaned, ". ")

	for _, c := range contractions {
		result = c.re.ReplaceAllString(result, c.replacement)
	}

	result = multiSpace.ReplaceAllString(result, " ")
	result = doublePoint.ReplaceAllString(result, ".")
	result = doubleComma.ReplaceAllString(result, ",")

	return strings.TrimSpace(result)
}
