package song

import (
	"context"
)

type Repository interface {
	// CreateWithAnalysis persists the song together with all of its lines
	// and vocab cards in a single transaction, filling in generated IDs and
	// the creation timestamp. No partial song may survive a failure.
	CreateWithAnalysis(ctx context.Context, s *Song) error

	// GetByID loads the full song with lines (ordered by index) and cards.
	GetByID(ctx context.Context, songID int) (*Song, error)

	// SongOwner returns the owning user ID, or ErrNotFound.
	SongOwner(ctx context.Context, songID int) (int, error)

	// VocabOwner resolves ownership transitively through the card's parent
	// song, or ErrNotFound.
	VocabOwner(ctx context.Context, vocabID int) (int, error)

	List(ctx context.Context, ownerID int) ([]Summary, error)

	// Delete removes the song and all of its children in one transaction.
	Delete(ctx context.Context, songID int) error

	ToggleSaved(ctx context.Context, vocabID int) (VocabCard, error)

	ListSaved(ctx context.Context, ownerID int) ([]SavedVocab, error)
}
