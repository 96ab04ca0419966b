package storage

import "time"

// PracticeSessionModel is the GORM model for practice_sessions table
type PracticeSessionModel struct {
	BPM       int `gorm:"not null;default:0"`
	CreatedAt time.Time
	EndedAt   time.Time             `gorm:"not null"`
	ID        string                `gorm:"primaryKey"`
	Mode      string                `gorm:"not null;check:mode IN ('manual','auto','preset')"`
	Prompts   []PracticePromptModel `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	StartedAt time.Time             `gorm:"not null;index:idx_started_at"`
}

// TableName specifies the table name for GORM
func (PracticeSessionModel) TableName() string { return "practice_sessions" }

// PracticePromptModel is the GORM model for the prompts shown in a session
type PracticePromptModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Note      string    `gorm:"not null"`
	Position  int       `gorm:"not null"`
	SessionID string    `gorm:"not null;index:idx_prompt_session"`
	ShownAt   time.Time `gorm:"not null"`
	String    int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (PracticePromptModel) TableName() string { return "practice_prompts" }
