package internal

import (
	"barkwise/pet-api/internal/mail"
	"barkwise/pet-api/internal/service"
	"barkwise/pet-api/pkg/security"
	"time"

	"gorm.io/gorm"
)

// Deps are the process wide handles shared by every handler. They are set
// up once before serving and not modified afterwards.
type Deps struct {
	DB     *gorm.DB
	Hasher security.Hasher
	Tokens *security.TokenIssuer
	Mailer mail.Dispatcher
	Resets *service.ResetLedger
	Now    func() time.Time
}
