package song

import (
	"context"
	"errors"

	"lyristudy/internal/app/server/api/http/middleware/auth"
	"lyristudy/internal/domain/analysis"
	"lyristudy/internal/domain/quota"
	"lyristudy/internal/domain/song"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// QuotaConsumer reserves one analysis slot for the user, or reports that
// the daily allowance is spent.
type QuotaConsumer interface {
	Consume(ctx context.Context, userID int) error
}

type Handler struct {
	songs      song.Servicer
	quota      QuotaConsumer
	analyzer   analysis.Analyzer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(songs song.Servicer, q QuotaConsumer, analyzer analysis.Analyzer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		songs:      songs,
		quota:      q,
		analyzer:   analyzer,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.analyzeOp(), h.analyze)
	huma.Register(api, h.historyOp(), h.history)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.deleteOp(), h.delete)
}

// analyze runs the full pipeline: the quota slot is consumed before the
// model call and is not refunded when the call fails.
func (h *Handler) analyze(ctx context.Context, input *analyzeInput) (*songOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.quota.Consume(ctx, userID); err != nil {
		if errors.Is(err, quota.ErrQuotaExceeded) {
			return nil, huma.Error429TooManyRequests("Daily analysis limit reached")
		}
		return nil, err
	}

	result, err := h.analyzer.Analyze(ctx, input.Body.Lyrics, input.Body.Language)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrQuotaExceeded):
			return nil, huma.Error429TooManyRequests("Analysis provider quota exceeded")
		case errors.Is(err, analysis.ErrUnavailable), errors.Is(err, analysis.ErrMalformedResponse):
			h.log.Error("analysis failed", "user_id", userID, "error", err)
			return nil, huma.Error502BadGateway("Analysis service failed")
		}
		return nil, err
	}

	sng, err := h.songs.CommitAnalysis(ctx, userID,
		input.Body.Language,
		input.Body.Lyrics,
		input.Body.Title,
		input.Body.Artist,
		result,
	)
	if err != nil {
		return nil, err
	}

	return &songOutput{Body: sng}, nil
}

func (h *Handler) history(ctx context.Context, _ *struct{}) (*historyOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	summaries, err := h.songs.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &historyOutput{Body: summaries}, nil
}

func (h *Handler) find(ctx context.Context, input *songInput) (*songOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	sng, err := h.songs.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, mapOwnershipError(err)
	}

	return &songOutput{Body: sng}, nil
}

func (h *Handler) delete(ctx context.Context, input *songInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.songs.Delete(ctx, userID, input.ID); err != nil {
		return nil, mapOwnershipError(err)
	}

	return &deleteOutput{Body: deleteResponse{Status: "Ok"}}, nil
}

func mapOwnershipError(err error) error {
	switch {
	case errors.Is(err, song.ErrNotFound):
		return huma.Error404NotFound("Song not found")
	case errors.Is(err, song.ErrForbidden):
		return huma.Error403Forbidden("Song belongs to another user")
	}
	return err
}
