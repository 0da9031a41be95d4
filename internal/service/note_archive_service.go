package service

import (
	"context"

	"pomodoro-bot-be/internal/entity"
	"pomodoro-bot-be/internal/repository/contract"

	"github.com/google/uuid"
)

// INoteArchiveService is the durable note storage consumed by the
// dispatcher: a finished session's summary, or a quick note, becomes one
// Markdown document.
type INoteArchiveService interface {
	Upload(ctx context.Context, fileName, content string) (string, error)
}

type noteArchiveService struct {
	noteRepo contract.NoteRepository
}

func NewNoteArchiveService(noteRepo contract.NoteRepository) INoteArchiveService {
	return &noteArchiveService{noteRepo: noteRepo}
}

func (s *noteArchiveService) Upload(ctx context.Context, fileName, content string) (string, error) {
	note := entity.Note{
		Id:       uuid.New(),
		FileName: fileName,
		Content:  content,
	}
	if err := s.noteRepo.Create(ctx, &note); err != nil {
		return "", err
	}
	return note.Id.String(), nil
}
