package discord

import "github.com/palaver-chat/palaver/palaverjson"

// user.go represents the structures for a user.

// UserPremiumType represents the type of Nitro on a user's account.
type UserPremiumType int

// User premium type.
const (
	UserPremiumTypeNone UserPremiumType = iota
	UserPremiumTypeNitroClassic
	UserPremiumTypeNitro
)

// User represents a user account.
type User struct {
	Banner        string          `json:"banner,omitempty"`
	GlobalName    string          `json:"global_name"`
	Avatar        *string         `json:"avatar"`
	Username      string          `json:"username"`
	Discriminator string          `json:"discriminator"`
	Locale        string          `json:"locale,omitempty"`
	Email         string          `json:"email,omitempty"`
	ID            UserID          `json:"id"`
	PremiumType   UserPremiumType `json:"premium_type"`
	MFAEnabled    bool            `json:"mfa_enabled"`
	Verified      bool            `json:"verified"`
	Bot           bool            `json:"bot"`
	System        bool            `json:"system"`
}

// Used to avoid a marshal loop.
type marshalUser User

func (u User) MarshalJSON() ([]byte, error) {
	// Patch for discriminator
	if u.Discriminator == "" {
		u.Discriminator = "0"
	}

	return palaverjson.Marshal(marshalUser(u))
}

// DisplayName returns the name the user is shown under: the global display
// name when set, the username otherwise.
func (u User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}

	return u.Username
}

// Mention returns the clickable user mention markup.
func (u User) Mention() string {
	return "<@" + u.ID.String() + ">"
}
