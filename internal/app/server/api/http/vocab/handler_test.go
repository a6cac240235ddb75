package vocab

import (
	"context"
	"testing"

	"lyristudy/internal/app/server/api/http/middleware/auth"
	"lyristudy/internal/domain/analysis"
	"lyristudy/internal/domain/song"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockSongs struct {
	mock.Mock
}

func (m *MockSongs) CommitAnalysis(ctx context.Context, ownerID int, language, lyrics, suppliedTitle, suppliedArtist string, result *analysis.Result) (*song.Song, error) {
	args := m.Called(ctx, ownerID, language, lyrics, suppliedTitle, suppliedArtist, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*song.Song), args.Error(1)
}

func (m *MockSongs) Get(ctx context.Context, ownerID, songID int) (*song.Song, error) {
	args := m.Called(ctx, ownerID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*song.Song), args.Error(1)
}

func (m *MockSongs) List(ctx context.Context, ownerID int) ([]song.Summary, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]song.Summary), args.Error(1)
}

func (m *MockSongs) Delete(ctx context.Context, ownerID, songID int) error {
	args := m.Called(ctx, ownerID, songID)
	return args.Error(0)
}

func (m *MockSongs) ToggleVocabSaved(ctx context.Context, ownerID, vocabID int) (song.VocabCard, error) {
	args := m.Called(ctx, ownerID, vocabID)
	return args.Get(0).(song.VocabCard), args.Error(1)
}

func (m *MockSongs) ListSavedVocab(ctx context.Context, ownerID int) ([]song.SavedVocab, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]song.SavedVocab), args.Error(1)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var se huma.StatusError
	if assert.ErrorAs(t, err, &se) {
		assert.Equal(t, status, se.GetStatus())
	}
}

func TestHandler_toggle(t *testing.T) {
	userID := 42
	authCtx := auth.WithUserID(context.Background(), userID)

	t.Run("Success", func(t *testing.T) {
		songs := new(MockSongs)
		h := NewHandler(songs, slog.Default(), huma.Middlewares{})

		songs.On("ToggleVocabSaved", mock.Anything, userID, 3).
			Return(song.VocabCard{ID: 3, Word: "사랑", IsSaved: true}, nil)

		resp, err := h.toggle(authCtx, &toggleInput{ID: 3})

		assert.NoError(t, err)
		assert.True(t, resp.Body.IsSaved)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		h := NewHandler(new(MockSongs), slog.Default(), huma.Middlewares{})

		resp, err := h.toggle(context.Background(), &toggleInput{ID: 3})

		assert.Nil(t, resp)
		assertStatus(t, err, 401)
	})

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "NotFound", serviceErr: song.ErrNotFound, wantStatus: 404},
		{name: "Forbidden", serviceErr: song.ErrForbidden, wantStatus: 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			songs := new(MockSongs)
			h := NewHandler(songs, slog.Default(), huma.Middlewares{})

			songs.On("ToggleVocabSaved", mock.Anything, userID, 3).
				Return(song.VocabCard{}, tt.serviceErr)

			resp, err := h.toggle(authCtx, &toggleInput{ID: 3})

			assert.Nil(t, resp)
			assertStatus(t, err, tt.wantStatus)
		})
	}
}

func TestHandler_saved(t *testing.T) {
	userID := 42
	authCtx := auth.WithUserID(context.Background(), userID)

	songs := new(MockSongs)
	h := NewHandler(songs, slog.Default(), huma.Middlewares{})

	songs.On("ListSavedVocab", mock.Anything, userID).Return([]song.SavedVocab{
		{VocabCard: song.VocabCard{ID: 1, Word: "사랑", IsSaved: true}, SongTitle: "Spring Day"},
	}, nil)

	resp, err := h.saved(authCtx, nil)

	assert.NoError(t, err)
	assert.Len(t, resp.Body, 1)
	assert.Equal(t, "Spring Day", resp.Body[0].SongTitle)
}
