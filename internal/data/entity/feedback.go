package entity

import (
	"github.com/google/uuid"
)

type Feedback struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	WashID  uuid.UUID `db:"wash_id"`
	Rating  int       `db:"rating"`
	Comment string    `db:"comment"`
}
