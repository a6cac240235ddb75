package song

import (
	"time"
)

// Song is the aggregate root: every line and vocab card belongs to exactly
// one song, and the song belongs to exactly one user.
type Song struct {
	ID         int         `json:"id"`
	OwnerID    int         `json:"-"`
	Title      string      `json:"title"`
	Artist     string      `json:"artist"`
	SourceText string      `json:"source_text"`
	Language   string      `json:"language"`
	CreatedAt  time.Time   `json:"created_at"`
	Lines      []Line      `json:"lines"`
	VocabCards []VocabCard `json:"vocab_cards"`
}

type Line struct {
	ID              int    `json:"id"`
	SongID          int    `json:"song_id"`
	LineIndex       int    `json:"line_index"`
	OriginalText    string `json:"original_text"`
	TranslationText string `json:"translation_text"`
	GrammarNotes    string `json:"grammar_notes"`
}

type VocabCard struct {
	ID                 int    `json:"id"`
	SongID             int    `json:"song_id"`
	Word               string `json:"word"`
	Lemma              string `json:"lemma"`
	Reading            string `json:"reading"`
	Meaning            string `json:"meaning"`
	PartOfSpeech       string `json:"part_of_speech"`
	ExampleSentence    string `json:"example_sentence"`
	ExampleTranslation string `json:"example_translation"`
	IsSaved            bool   `json:"is_saved"`
}

// Summary is the list-view projection of a song without its children.
type Summary struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedVocab is a bookmarked card joined with its parent song's identity.
type SavedVocab struct {
	VocabCard
	SongTitle  string `json:"song_title"`
	SongArtist string `json:"song_artist"`
}
