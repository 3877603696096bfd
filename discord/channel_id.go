package discord

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// channel_id.go contains every identifier-scoped operation. Each operation
// is implemented exactly once, here; channel variants and the Channel union
// forward to these.

// Mention returns the clickable channel mention markup.
func (c ChannelID) Mention() string {
	return "<#" + c.String() + ">"
}

// SendMessage sends a message to the channel.
func (c ChannelID) SendMessage(s *Session, params CreateMessageParams) (*Message, error) {
	endpoint := fmt.Sprintf("/channels/%d/messages", c)

	var message Message

	err := s.Interface.FetchJJ(s, http.MethodPost, endpoint, params, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &message, nil
}

// Say sends a message with just the given content.
func (c ChannelID) Say(s *Session, content string) (*Message, error) {
	return c.SendMessage(s, CreateMessageParams{Content: content})
}

// EditMessage edits a message in the channel given its ID. Editing preserves
// all unchanged message data.
func (c ChannelID) EditMessage(s *Session, messageID MessageID, params EditMessageParams) (*Message, error) {
	endpoint := fmt.Sprintf("/channels/%d/messages/%d", c, messageID)

	var message Message

	err := s.Interface.FetchJJ(s, http.MethodPatch, endpoint, params, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to edit message: %w", err)
	}

	return &message, nil
}

// DeleteMessage deletes a message in the channel given its ID.
func (c ChannelID) DeleteMessage(s *Session, messageID MessageID) error {
	endpoint := fmt.Sprintf("/channels/%d/messages/%d", c, messageID)

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

// DeleteMessages bulk deletes messages by ID. Messages older than 2 weeks
// are rejected by the remote service.
func (c ChannelID) DeleteMessages(s *Session, messageIDs []MessageID) error {
	endpoint := fmt.Sprintf("/channels/%d/messages/bulk-delete", c)

	err := s.Interface.FetchJJ(s, http.MethodPost, endpoint, deleteMessagesParams{Messages: messageIDs}, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to bulk delete messages: %w", err)
	}

	return nil
}

// Message fetches a single message from the channel.
func (c ChannelID) Message(s *Session, messageID MessageID) (*Message, error) {
	endpoint := fmt.Sprintf("/channels/%d/messages/%d", c, messageID)

	var message Message

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return &message, nil
}

// Messages fetches messages from the channel, filtered by params.
func (c ChannelID) Messages(s *Session, params GetMessagesParams) ([]Message, error) {
	endpoint := fmt.Sprintf("/channels/%d/messages?%s", c, params.values().Encode())

	var messages []Message

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &messages)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}

// Search performs a message search in the channel. Bot accounts cannot
// search; when the session carries an identity the restriction fails fast
// without a request.
func (c ChannelID) Search(s *Session, params SearchParams) (*SearchResult, error) {
	if s.isBot() {
		return nil, ErrInvalidOperationAsBot
	}

	endpoint := fmt.Sprintf("/channels/%d/messages/search?%s", c, params.values().Encode())

	var result SearchResult

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	return &result, nil
}

// Ack marks the channel as read up to the given message. Bot accounts
// cannot acknowledge read state.
func (c ChannelID) Ack(s *Session, messageID MessageID) error {
	if s.isBot() {
		return ErrInvalidOperationAsBot
	}

	endpoint := fmt.Sprintf("/channels/%d/messages/%d/ack", c, messageID)

	err := s.Interface.FetchJJ(s, http.MethodPost, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to ack message: %w", err)
	}

	return nil
}

// Pin pins a message in the channel given its ID.
func (c ChannelID) Pin(s *Session, messageID MessageID) error {
	endpoint := fmt.Sprintf("/channels/%d/pins/%d", c, messageID)

	err := s.Interface.FetchJJ(s, http.MethodPut, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to pin message: %w", err)
	}

	return nil
}

// Unpin unpins a message in the channel given its ID.
func (c ChannelID) Unpin(s *Session, messageID MessageID) error {
	endpoint := fmt.Sprintf("/channels/%d/pins/%d", c, messageID)

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to unpin message: %w", err)
	}

	return nil
}

// Pins fetches the messages pinned in the channel.
func (c ChannelID) Pins(s *Session) ([]Message, error) {
	endpoint := fmt.Sprintf("/channels/%d/pins", c)

	var messages []Message

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &messages)
	if err != nil {
		return nil, fmt.Errorf("failed to get pins: %w", err)
	}

	return messages, nil
}

// CreateReaction reacts to a message with a custom emoji or unicode
// character.
func (c ChannelID) CreateReaction(s *Session, messageID MessageID, emoji string) error {
	endpoint := fmt.Sprintf("/channels/%d/messages/%d/reactions/%s/@me", c, messageID, url.PathEscape(emoji))

	err := s.Interface.FetchJJ(s, http.MethodPut, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create reaction: %w", err)
	}

	return nil
}

// DeleteReaction deletes a reaction on a message. When userID is nil the
// current user's reaction is removed.
func (c ChannelID) DeleteReaction(s *Session, messageID MessageID, userID *UserID, emoji string) error {
	target := "@me"
	if userID != nil {
		target = userID.String()
	}

	endpoint := fmt.Sprintf("/channels/%d/messages/%d/reactions/%s/%s", c, messageID, url.PathEscape(emoji), target)

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}

	return nil
}

// ReactionUsers fetches the users that reacted to a message with an emoji.
// The limit is clamped to 100 by the remote service; after is used for
// pagination.
func (c ChannelID) ReactionUsers(s *Session, messageID MessageID, emoji string, limit int32, after *UserID) ([]User, error) {
	values := url.Values{}

	if limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(limit), 10))
	}

	if after != nil {
		values.Set("after", after.String())
	}

	endpoint := fmt.Sprintf("/channels/%d/messages/%d/reactions/%s?%s", c, messageID, url.PathEscape(emoji), values.Encode())

	var users []User

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction users: %w", err)
	}

	return users, nil
}

// BroadcastTyping broadcasts that the current user is typing in the channel.
func (c ChannelID) BroadcastTyping(s *Session) error {
	endpoint := fmt.Sprintf("/channels/%d/typing", c)

	err := s.Interface.FetchJJ(s, http.MethodPost, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to broadcast typing: %w", err)
	}

	return nil
}

// EditPermission creates or edits a permission overwrite on the channel.
func (c ChannelID) EditPermission(s *Session, overwrite PermissionOverwrite) error {
	endpoint := fmt.Sprintf("/channels/%d/permissions/%d", c, overwrite.Type.id())

	err := s.Interface.FetchJJ(s, http.MethodPut, endpoint, overwrite, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to edit permission overwrite: %w", err)
	}

	return nil
}

// DeletePermission deletes a member or role permission overwrite from the
// channel.
func (c ChannelID) DeletePermission(s *Session, overwriteType PermissionOverwriteType) error {
	endpoint := fmt.Sprintf("/channels/%d/permissions/%d", c, overwriteType.id())

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete permission overwrite: %w", err)
	}

	return nil
}

// AddGroupRecipient adds a user to the group. The remote service enforces
// the recipient cap.
func (c ChannelID) AddGroupRecipient(s *Session, userID UserID) error {
	endpoint := fmt.Sprintf("/channels/%d/recipients/%d", c, userID)

	err := s.Interface.FetchJJ(s, http.MethodPut, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to add group recipient: %w", err)
	}

	return nil
}

// RemoveGroupRecipient removes a user from the group.
func (c ChannelID) RemoveGroupRecipient(s *Session, userID UserID) error {
	endpoint := fmt.Sprintf("/channels/%d/recipients/%d", c, userID)

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to remove group recipient: %w", err)
	}

	return nil
}

// LeaveGroup leaves the group. The returned snapshot is the remote
// service's authoritative post-leave state.
func (c ChannelID) LeaveGroup(s *Session) (*Group, error) {
	endpoint := fmt.Sprintf("/channels/%d", c)

	var group Group

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, nil, &group)
	if err != nil {
		return nil, fmt.Errorf("failed to leave group: %w", err)
	}

	return &group, nil
}

// Delete deletes the channel, or closes it for a direct message channel.
func (c ChannelID) Delete(s *Session) error {
	endpoint := fmt.Sprintf("/channels/%d", c)

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	return nil
}
