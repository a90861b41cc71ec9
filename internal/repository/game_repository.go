package repository

import (
	"errors"

	"bulls_cows_backend/internal/model"

	"gorm.io/gorm"
)

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{DB: db}
}

func (r *GameRepository) Create(game *model.Game) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(game).Error
	})
}

// FindByID returns (nil, nil) when no game exists with the given id, so
// callers can tell absence apart from a database failure.
func (r *GameRepository) FindByID(id string) (*model.Game, error) {
	var game model.Game
	err := r.DB.First(&game, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) Update(id string, fields map[string]interface{}) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Game{}).Where("id = ?", id).Updates(fields).Error
	})
}

func (r *GameRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.Game{}, "id = ?", id).Error
	})
}
