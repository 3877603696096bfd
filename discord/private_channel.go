package discord

import (
	"github.com/palaver-chat/palaver/palaverjson"
	"github.com/palaver-chat/palaver/pkg/lockcell"
)

// PrivateChannel represents a direct message channel to another user. No
// other users may access the channel.
type PrivateChannel struct {
	Recipient     *lockcell.Cell[User]
	LastMessageID *MessageID
	ID            ChannelID
	Type          ChannelType
}

type privateChannelData struct {
	Recipient     *User       `json:"recipient,omitempty"`
	Recipients    []User      `json:"recipients,omitempty"`
	LastMessageID *MessageID  `json:"last_message_id,omitempty"`
	ID            ChannelID   `json:"id"`
	Type          ChannelType `json:"type"`
}

// The wire carries the recipient either as a single "recipient" object or a
// one-element "recipients" array depending on the payload's origin.
func (c *PrivateChannel) UnmarshalJSON(b []byte) error {
	var data privateChannelData

	if err := palaverjson.Unmarshal(b, &data); err != nil {
		return err
	}

	recipient := data.Recipient
	if recipient == nil && len(data.Recipients) > 0 {
		recipient = &data.Recipients[0]
	}

	if recipient == nil {
		return &MissingFieldError{Field: "recipient"}
	}

	*c = PrivateChannel{
		Recipient:     lockcell.New(*recipient),
		LastMessageID: data.LastMessageID,
		ID:            data.ID,
		Type:          data.Type,
	}

	return nil
}

func (c PrivateChannel) MarshalJSON() ([]byte, error) {
	recipient := c.Recipient.Get()

	return palaverjson.Marshal(privateChannelData{
		Recipient:     &recipient,
		LastMessageID: c.LastMessageID,
		ID:            c.ID,
		Type:          c.Type,
	})
}

// Name returns the recipient's display name.
func (c PrivateChannel) Name() string {
	return lockcell.View(c.Recipient, func(u User) string { return u.DisplayName() })
}

// IsNSFW is always false for private channels.
func (c PrivateChannel) IsNSFW() bool {
	return false
}

// Delete closes the private channel. The underlying conversation is not
// destroyed; the channel reopens on the next message.
func (c PrivateChannel) Delete(s *Session) error {
	return c.ID.Delete(s)
}

// SendMessage sends a message to the recipient.
func (c PrivateChannel) SendMessage(s *Session, params CreateMessageParams) (*Message, error) {
	return c.ID.SendMessage(s, params)
}

// Say sends a message with just the given content.
func (c PrivateChannel) Say(s *Session, content string) (*Message, error) {
	return c.ID.Say(s, content)
}
