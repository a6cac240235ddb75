package vocab

import (
	"context"
	"errors"

	"lyristudy/internal/app/server/api/http/middleware/auth"
	"lyristudy/internal/domain/song"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	songs      song.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(songs song.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		songs:      songs,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.toggleOp(), h.toggle)
	huma.Register(api, h.savedOp(), h.saved)
}

func (h *Handler) toggle(ctx context.Context, input *toggleInput) (*cardOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	card, err := h.songs.ToggleVocabSaved(ctx, userID, input.ID)
	if err != nil {
		switch {
		case errors.Is(err, song.ErrNotFound):
			return nil, huma.Error404NotFound("Vocab card not found")
		case errors.Is(err, song.ErrForbidden):
			return nil, huma.Error403Forbidden("Vocab card belongs to another user")
		}
		return nil, err
	}

	return &cardOutput{Body: card}, nil
}

func (h *Handler) saved(ctx context.Context, _ *struct{}) (*savedOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	cards, err := h.songs.ListSavedVocab(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &savedOutput{Body: cards}, nil
}
