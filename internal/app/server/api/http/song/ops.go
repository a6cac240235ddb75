package song

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) analyzeOp() huma.Operation {
	return huma.Operation{
		OperationID: "song-analyze",
		Method:      http.MethodPost,
		Path:        "/api/analyze",
		Summary:     "Analyze lyrics and save the song",
		Description: "Runs the AI analysis over the submitted lyrics and stores the song with its translated lines and vocabulary cards.",
		Tags:        []string{"songs"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) historyOp() huma.Operation {
	return huma.Operation{
		OperationID: "song-history",
		Method:      http.MethodGet,
		Path:        "/api/history",
		Summary:     "List the user's analyzed songs",
		Tags:        []string{"songs"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "song-find",
		Method:      http.MethodGet,
		Path:        "/api/song/{id}",
		Summary:     "Get one song with lines and vocab",
		Tags:        []string{"songs"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "song-delete",
		Method:      http.MethodDelete,
		Path:        "/api/song/{id}",
		Summary:     "Delete a song",
		Tags:        []string{"songs"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
