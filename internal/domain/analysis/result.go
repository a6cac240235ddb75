package analysis

// Result is the structured breakdown the model must return for one lyrics
// submission: best-effort song identity, a per-line translation with grammar
// notes and a learner vocabulary list.
type Result struct {
	Title  string       `json:"title"`
	Artist string       `json:"artist"`
	Lines  []Line       `json:"lines"`
	Vocab  []VocabEntry `json:"vocab"`
}

type Line struct {
	LineIndex       int    `json:"line_index"`
	OriginalText    string `json:"original_text"`
	TranslationText string `json:"translation_text"`
	GrammarNotes    string `json:"grammar_notes"`
}

type VocabEntry struct {
	Word               string `json:"word"`
	Lemma              string `json:"lemma"`
	Reading            string `json:"reading"`
	Meaning            string `json:"meaning"`
	PartOfSpeech       string `json:"part_of_speech"`
	ExampleSentence    string `json:"example_sentence"`
	ExampleTranslation string `json:"example_translation"`
}
