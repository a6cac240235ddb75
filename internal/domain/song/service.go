package song

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"lyristudy/internal/domain/analysis"
)

const (
	fallbackTitle  = "Unknown"
	fallbackArtist = "Unknown Artist"
)

type Servicer interface {
	CommitAnalysis(ctx context.Context, ownerID int, language, lyrics, suppliedTitle, suppliedArtist string, result *analysis.Result) (*Song, error)
	Get(ctx context.Context, ownerID, songID int) (*Song, error)
	List(ctx context.Context, ownerID int) ([]Summary, error)
	Delete(ctx context.Context, ownerID, songID int) error
	ToggleVocabSaved(ctx context.Context, ownerID, vocabID int) (VocabCard, error)
	ListSavedVocab(ctx context.Context, ownerID int) ([]SavedVocab, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "song_service"),
	}
}

// CommitAnalysis materializes an AI analysis result into an owned song with
// its lines and vocab cards. Title and artist resolve with precedence:
// caller-supplied non-blank value, then the AI-extracted value, then the
// fixed fallback.
func (s *Service) CommitAnalysis(ctx context.Context, ownerID int, language, lyrics, suppliedTitle, suppliedArtist string, result *analysis.Result) (*Song, error) {
	sng := &Song{
		OwnerID:    ownerID,
		Title:      resolve(suppliedTitle, result.Title, fallbackTitle),
		Artist:     resolve(suppliedArtist, result.Artist, fallbackArtist),
		SourceText: lyrics,
		Language:   language,
		Lines:      make([]Line, 0, len(result.Lines)),
		VocabCards: make([]VocabCard, 0, len(result.Vocab)),
	}

	for _, line := range result.Lines {
		sng.Lines = append(sng.Lines, Line{
			LineIndex:       line.LineIndex,
			OriginalText:    line.OriginalText,
			TranslationText: line.TranslationText,
			GrammarNotes:    line.GrammarNotes,
		})
	}

	for _, v := range result.Vocab {
		sng.VocabCards = append(sng.VocabCards, VocabCard{
			Word:               v.Word,
			Lemma:              v.Lemma,
			Reading:            v.Reading,
			Meaning:            v.Meaning,
			PartOfSpeech:       v.PartOfSpeech,
			ExampleSentence:    v.ExampleSentence,
			ExampleTranslation: v.ExampleTranslation,
		})
	}

	if err := s.repo.CreateWithAnalysis(ctx, sng); err != nil {
		s.log.Error("failed to commit analysis", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("commit analysis: %w", err)
	}

	s.log.Info("analysis committed", "song_id", sng.ID, "user_id", ownerID,
		"lines", len(sng.Lines), "vocab_cards", len(sng.VocabCards))

	return sng, nil
}

func (s *Service) Get(ctx context.Context, ownerID, songID int) (*Song, error) {
	if err := s.authorizeSong(ctx, ownerID, songID); err != nil {
		return nil, err
	}

	sng, err := s.repo.GetByID(ctx, songID)
	if err != nil {
		s.log.Error("failed to load song", "song_id", songID, "error", err)
		return nil, fmt.Errorf("get song: %w", err)
	}

	return sng, nil
}

func (s *Service) List(ctx context.Context, ownerID int) ([]Summary, error) {
	summaries, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list songs", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list songs: %w", err)
	}
	return summaries, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, songID int) error {
	if err := s.authorizeSong(ctx, ownerID, songID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, songID); err != nil {
		s.log.Error("failed to delete song", "song_id", songID, "error", err)
		return fmt.Errorf("delete song: %w", err)
	}

	s.log.Info("song deleted", "song_id", songID, "user_id", ownerID)
	return nil
}

func (s *Service) ToggleVocabSaved(ctx context.Context, ownerID, vocabID int) (VocabCard, error) {
	owner, err := s.repo.VocabOwner(ctx, vocabID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return VocabCard{}, ErrNotFound
		}
		return VocabCard{}, fmt.Errorf("resolve vocab owner: %w", err)
	}
	if owner != ownerID {
		return VocabCard{}, ErrForbidden
	}

	card, err := s.repo.ToggleSaved(ctx, vocabID)
	if err != nil {
		s.log.Error("failed to toggle vocab", "vocab_id", vocabID, "error", err)
		return VocabCard{}, fmt.Errorf("toggle vocab: %w", err)
	}

	return card, nil
}

func (s *Service) ListSavedVocab(ctx context.Context, ownerID int) ([]SavedVocab, error) {
	saved, err := s.repo.ListSaved(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list saved vocab", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("list saved vocab: %w", err)
	}
	return saved, nil
}

// authorizeSong is the single ownership predicate guarding every song-rooted
// read or mutation. Absent songs report ErrNotFound; existing songs of
// another user report ErrForbidden.
func (s *Service) authorizeSong(ctx context.Context, ownerID, songID int) error {
	owner, err := s.repo.SongOwner(ctx, songID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("resolve song owner: %w", err)
	}
	if owner != ownerID {
		return ErrForbidden
	}
	return nil
}

func resolve(supplied, extracted, fallback string) string {
	if strings.TrimSpace(supplied) != "" {
		return supplied
	}
	if strings.TrimSpace(extracted) != "" {
		return extracted
	}
	return fallback
}
