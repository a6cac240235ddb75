package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"lyristudy/internal/domain/song"
)

type SongRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSongRepository(pool *pgxpool.Pool, log *slog.Logger) *SongRepository {
	return &SongRepository{
		pool: pool,
		log:  log.With("component", "song_repository"),
	}
}

// CreateWithAnalysis inserts the song, its lines and its vocab cards inside
// one transaction; a failure at any step rolls everything back so a partial
// song is never visible.
func (r *SongRepository) CreateWithAnalysis(ctx context.Context, s *song.Song) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO songs (user_id, title, artist, source_text, language)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		s.OwnerID, s.Title, s.Artist, s.SourceText, s.Language,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		r.log.Error("failed to insert song", "user_id", s.OwnerID, "error", err)
		return fmt.Errorf("insert song: %w", err)
	}

	for i := range s.Lines {
		line := &s.Lines[i]
		line.SongID = s.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO lyrics_lines (song_id, line_index, original_text, translation_text, grammar_notes)
             VALUES ($1, $2, $3, $4, $5)
             RETURNING id`,
			s.ID, line.LineIndex, line.OriginalText, line.TranslationText, line.GrammarNotes,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("insert line %d: %w", line.LineIndex, err)
		}
	}

	for i := range s.VocabCards {
		card := &s.VocabCards[i]
		card.SongID = s.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO vocab_cards (song_id, word, lemma, reading, meaning, part_of_speech, example_sentence, example_translation)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
             RETURNING id`,
			s.ID, card.Word, card.Lemma, card.Reading, card.Meaning,
			card.PartOfSpeech, card.ExampleSentence, card.ExampleTranslation,
		).Scan(&card.ID)
		if err != nil {
			return fmt.Errorf("insert vocab card %q: %w", card.Word, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (r *SongRepository) GetByID(ctx context.Context, songID int) (*song.Song, error) {
	var s song.Song

	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, title, artist, source_text, language, created_at
         FROM songs
         WHERE id = $1`,
		songID).Scan(&s.ID, &s.OwnerID, &s.Title, &s.Artist, &s.SourceText, &s.Language, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, song.ErrNotFound
		}
		return nil, fmt.Errorf("get song: %w", err)
	}

	s.Lines = make([]song.Line, 0)
	rows, err := r.pool.Query(ctx,
		`SELECT id, song_id, line_index, original_text, translation_text, grammar_notes
         FROM lyrics_lines
         WHERE song_id = $1
         ORDER BY line_index`,
		songID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line song.Line
		if err := rows.Scan(&line.ID, &line.SongID, &line.LineIndex,
			&line.OriginalText, &line.TranslationText, &line.GrammarNotes); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		s.Lines = append(s.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	s.VocabCards = make([]song.VocabCard, 0)
	cardRows, err := r.pool.Query(ctx,
		`SELECT id, song_id, word, lemma, reading, meaning, part_of_speech, example_sentence, example_translation, is_saved
         FROM vocab_cards
         WHERE song_id = $1
         ORDER BY id`,
		songID)
	if err != nil {
		return nil, fmt.Errorf("get vocab cards: %w", err)
	}
	defer cardRows.Close()

	for cardRows.Next() {
		card, err := scanVocabCard(cardRows)
		if err != nil {
			return nil, err
		}
		s.VocabCards = append(s.VocabCards, card)
	}
	if err := cardRows.Err(); err != nil {
		return nil, fmt.Errorf("read vocab cards: %w", err)
	}

	return &s, nil
}

func (r *SongRepository) SongOwner(ctx context.Context, songID int) (int, error) {
	var ownerID int
	err := r.pool.QueryRow(ctx,
		`SELECT user_id FROM songs WHERE id = $1`, songID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, song.ErrNotFound
		}
		return 0, fmt.Errorf("song owner: %w", err)
	}
	return ownerID, nil
}

func (r *SongRepository) VocabOwner(ctx context.Context, vocabID int) (int, error) {
	var ownerID int
	err := r.pool.QueryRow(ctx,
		`SELECT s.user_id
         FROM vocab_cards v
         JOIN songs s ON s.id = v.song_id
         WHERE v.id = $1`,
		vocabID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, song.ErrNotFound
		}
		return 0, fmt.Errorf("vocab owner: %w", err)
	}
	return ownerID, nil
}

func (r *SongRepository) List(ctx context.Context, ownerID int) ([]song.Summary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, artist, language, created_at
         FROM songs
         WHERE user_id = $1
         ORDER BY created_at DESC, id DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	summaries := make([]song.Summary, 0)
	for rows.Next() {
		var s song.Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.Language, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// Delete removes children before the parent inside one transaction. The
// schema also carries ON DELETE CASCADE, but the explicit order keeps the
// invariant independent of it.
func (r *SongRepository) Delete(ctx context.Context, songID int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM vocab_cards WHERE song_id = $1`, songID); err != nil {
		return fmt.Errorf("delete vocab cards: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM lyrics_lines WHERE song_id = $1`, songID); err != nil {
		return fmt.Errorf("delete lines: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM songs WHERE id = $1`, songID)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if result.RowsAffected() == 0 {
		return song.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *SongRepository) ToggleSaved(ctx context.Context, vocabID int) (song.VocabCard, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE vocab_cards
         SET is_saved = NOT is_saved
         WHERE id = $1
         RETURNING id, song_id, word, lemma, reading, meaning, part_of_speech, example_sentence, example_translation, is_saved`,
		vocabID)

	card, err := scanVocabCard(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return song.VocabCard{}, song.ErrNotFound
		}
		return song.VocabCard{}, fmt.Errorf("toggle vocab: %w", err)
	}

	return card, nil
}

func (r *SongRepository) ListSaved(ctx context.Context, ownerID int) ([]song.SavedVocab, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT v.id, v.song_id, v.word, v.lemma, v.reading, v.meaning, v.part_of_speech,
                v.example_sentence, v.example_translation, v.is_saved,
                s.title, s.artist
         FROM vocab_cards v
         JOIN songs s ON s.id = v.song_id
         WHERE s.user_id = $1 AND v.is_saved
         ORDER BY v.id`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("list saved vocab: %w", err)
	}
	defer rows.Close()

	saved := make([]song.SavedVocab, 0)
	for rows.Next() {
		var sv song.SavedVocab
		if err := rows.Scan(&sv.ID, &sv.SongID, &sv.Word, &sv.Lemma, &sv.Reading,
			&sv.Meaning, &sv.PartOfSpeech, &sv.ExampleSentence, &sv.ExampleTranslation,
			&sv.IsSaved, &sv.SongTitle, &sv.SongArtist); err != nil {
			return nil, fmt.Errorf("scan saved vocab: %w", err)
		}
		saved = append(saved, sv)
	}

	return saved, rows.Err()
}

func scanVocabCard(row pgx.Row) (song.VocabCard, error) {
	var card song.VocabCard
	err := row.Scan(&card.ID, &card.SongID, &card.Word, &card.Lemma, &card.Reading,
		&card.Meaning, &card.PartOfSpeech, &card.ExampleSentence, &card.ExampleTranslation,
		&card.IsSaved)
	return card, err
}
