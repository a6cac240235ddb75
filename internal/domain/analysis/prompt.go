package analysis

import (
	"fmt"
	"strings"
)

// buildPrompt produces the single instruction sent to the model. The wording
// pins down everything downstream parsing relies on: 0-based contiguous line
// indices, Traditional Chinese output script, native-script readings for
// Korean and Japanese, and raw JSON with no markdown fences.
func buildPrompt(lyrics, language string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert language teacher specializing in %s.\n\n", language)
	b.WriteString("Your task is to analyze the following lyrics:\n")
	b.WriteString("---\n")
	b.WriteString(lyrics)
	b.WriteString("\n---\n\n")
	b.WriteString("Perform the following steps:\n")
	b.WriteString("1. Identify the song title and artist if possible (or infer/leave generic).\n")
	b.WriteString("2. Translate the lyrics to Traditional Chinese line-by-line, using 0-based line indices with one entry per input line and no gaps.\n")
	b.WriteString("3. Provide brief grammar notes for each line in Traditional Chinese (繁體中文).\n")
	b.WriteString("4. Extract key vocabulary words (suitable for learners) from the lyrics.\n")
	b.WriteString("5. For each vocabulary word, provide its lemma (dictionary form), reading (pronunciation), part of speech, meaning in Traditional Chinese, and a simple example sentence with translation.\n")
	b.WriteString("   Important: If the language is Korean, do NOT use Romanization for the reading; use Hangul. For Japanese, use Hiragana.\n\n")
	b.WriteString("Output REQUIREMENT:\n")
	b.WriteString("Return raw JSON only. Do not use Markdown formatting (no ```json ... ```).\n\n")
	b.WriteString("The JSON structure must be:\n")
	b.WriteString(`{
    "title": "String",
    "artist": "String",
    "lines": [
        {
            "line_index": Integer (0-based),
            "original_text": "String",
            "translation_text": "String",
            "grammar_notes": "String"
        }
    ],
    "vocab": [
        {
            "word": "String",
            "lemma": "String",
            "reading": "String",
            "meaning": "String",
            "part_of_speech": "String",
            "example_sentence": "String",
            "example_translation": "String"
        }
    ]
}`)

	return b.String()
}
