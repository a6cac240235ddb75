package vocab

import "lyristudy/internal/domain/song"

type toggleInput struct {
	ID int `path:"id" example:"1" doc:"Vocab card ID"`
}

type cardOutput struct {
	Body song.VocabCard
}

type savedOutput struct {
	Body []song.SavedVocab
}
