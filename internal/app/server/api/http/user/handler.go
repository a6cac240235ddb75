package user

import (
	"context"
	"errors"

	"lyristudy/internal/domain/token"
	"lyristudy/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    user.Servicer
	tokens     token.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, tokens token.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		tokens:     tokens,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *credentialsInput) (*authOutput, error) {
	u, err := h.service.Register(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrAlreadyExists):
			return nil, huma.Error409Conflict("Username is already taken")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return h.issueToken(u)
}

func (h *Handler) login(ctx context.Context, input *credentialsInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	return h.issueToken(u)
}

func (h *Handler) issueToken(u user.User) (*authOutput, error) {
	t, err := h.tokens.Issue(u.ID, u.Username)
	if err != nil {
		h.log.Error("failed to issue token", "user_id", u.ID, "error", err)
		return nil, err
	}

	return &authOutput{
		Body: AuthResponse{
			Token:    t,
			Username: u.Username,
		},
	}, nil
}
