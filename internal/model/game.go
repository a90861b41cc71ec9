package model

// swagger:model Game
type Game struct {
	UUIDBase
	Username string `gorm:"size:50;not null" json:"username"`
	Age      int    `gorm:"not null" json:"age"`
	// Combination is the secret the player is guessing. It is set once at
	// creation, never updated, and never serialized in a response.
	Combination string `gorm:"size:4;not null" json:"-"`
	Won         bool   `gorm:"default:false" json:"won"`
	Score       int    `gorm:"default:0" json:"score"`
}

func (Game) TableName() string {
	return "games"
}
