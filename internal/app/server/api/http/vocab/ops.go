package vocab

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) toggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocab-toggle-save",
		Method:      http.MethodPost,
		Path:        "/api/vocab/toggle_save/{id}",
		Summary:     "Toggle the saved flag on a vocab card",
		Tags:        []string{"vocab"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) savedOp() huma.Operation {
	return huma.Operation{
		OperationID: "vocab-saved",
		Method:      http.MethodGet,
		Path:        "/api/vocab/saved",
		Summary:     "List the user's saved vocab cards",
		Tags:        []string{"vocab"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
