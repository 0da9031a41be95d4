package implementation

import (
	"context"

	"pomodoro-bot-be/internal/entity"
	"pomodoro-bot-be/internal/model"
	"pomodoro-bot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := model.Note{
		Id:       note.Id,
		FileName: note.FileName,
		Content:  note.Content,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	note.CreatedAt = m.CreatedAt
	return nil
}
