package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the durable credential record behind registration and
// login. Dashboard working-set users are derived from it at sign-in.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FullName     string             `bson:"full_name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	Department   string             `bson:"department"`
	Year         string             `bson:"year,omitempty"`
	Status       string             `bson:"status"` // Verified or Pending
	Suspended    bool               `bson:"suspended"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// RequiresApproval reports whether the account must be approved by an
// admin before it can sign in. Faculty accounts start Pending.
func (a Account) RequiresApproval() bool {
	return a.Role == RoleFaculty && a.Status == StatusPending
}
