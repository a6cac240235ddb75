package song

import "lyristudy/internal/domain/song"

type analyzeInput struct {
	Body analyzeRequest
}

type analyzeRequest struct {
	Lyrics   string `json:"lyrics" minLength:"1" doc:"Raw lyrics text to analyze"`
	Language string `json:"language" minLength:"1" example:"ko" doc:"Source language code, e.g. ko, ja, zh"`
	Title    string `json:"title,omitempty" doc:"Song title, overrides the extracted one"`
	Artist   string `json:"artist,omitempty" doc:"Artist name, overrides the extracted one"`
}

type songOutput struct {
	Body *song.Song
}

type songInput struct {
	ID int `path:"id" example:"1" doc:"Song ID"`
}

type historyOutput struct {
	Body []song.Summary
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Status string `json:"status"`
}
