package models

import (
	"time"

	"orbit/internal/emotions"
)

// Mood is a single mood entry recorded by a user.
type Mood struct {
	Base
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Rating       *float64  `json:"rating"`
	StressLevel  float64   `gorm:"not null" json:"stress_level"`
	AnxietyLevel float64   `gorm:"not null" json:"anxiety_level"`
	EnergyLevel  float64   `gorm:"not null" json:"energy_level"`
	Title        *string   `gorm:"size:500" json:"title"`
	Description  *string   `gorm:"size:500" json:"description"`
	RecordedAt   time.Time `gorm:"not null;index" json:"recorded_at"`

	// Relationships
	User       *User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Components []MoodComponent `gorm:"foreignKey:MoodID" json:"mood_components"`
}

// TableName keeps the singular table name used by the SQL migrations.
func (Mood) TableName() string { return "mood" }

// MoodComponent is one emotion of a mood entry and its intensity.
type MoodComponent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MoodID    uint      `gorm:"not null;index" json:"mood_id"`
	Emotion   string    `gorm:"not null" json:"emotion"`
	Intensity float64   `gorm:"not null" json:"intensity"`
	CreatedAt time.Time `json:"created_at"`

	Mood *Mood `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the component table name.
func (MoodComponent) TableName() string { return "mood_components" }

// EmotionComponents converts stored components to emotion engine values,
// preserving order.
func (m *Mood) EmotionComponents() []emotions.Component {
	out := make([]emotions.Component, 0, len(m.Components))
	for _, c := range m.Components {
		out = append(out, emotions.Component{Emotion: c.Emotion, Intensity: c.Intensity})
	}
	return out
}

// NewMoodComponents builds component rows for the given mood.
func NewMoodComponents(moodID uint, components []emotions.Component) []MoodComponent {
	rows := make([]MoodComponent, 0, len(components))
	for _, c := range components {
		rows = append(rows, MoodComponent{MoodID: moodID, Emotion: c.Emotion, Intensity: c.Intensity})
	}
	return rows
}

// MoodDetail is a mood entry with its owner's name and emotion statistics.
type MoodDetail struct {
	Mood
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	EmotionStats *emotions.Stats `json:"emotion_stats,omitempty"`
}

// MoodEntry is a mood entry as returned by listings.
type MoodEntry struct {
	Mood
	EmotionStats emotions.Stats `json:"emotion_stats"`
}
