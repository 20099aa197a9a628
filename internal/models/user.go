package models

// DefaultTimezone is assigned to users that register without one.
const DefaultTimezone = "UTC"

// User represents the user model in the database
type User struct {
	Base
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"size:500;not null" json:"first_name"`
	LastName  string `gorm:"size:500;not null" json:"last_name"`
	Timezone  string `gorm:"not null;default:UTC" json:"timezone"`
}

// UserProfile is a user together with derived counters.
type UserProfile struct {
	User
	TotalMoods int64 `json:"total_moods"`
}
