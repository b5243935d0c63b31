package model

// All lists every model for auto migration
func All() []any {
	return []any{
		&User{},
		&PasswordReset{},
		&JournalEntry{},
		&ScheduleEvent{},
		&Comment{},
		&DogProfile{},
		&Milestone{},
		&WeightEntry{},
	}
}
