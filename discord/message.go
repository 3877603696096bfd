package discord

import (
	"net/url"
	"strconv"
)

// message.go contains the structure that represents a message, along with
// the request parameters for the message operations on ChannelID.

// MessageType represents the type of message that has been sent.
type MessageType uint16

const (
	MessageTypeDefault MessageType = iota
	MessageTypeRecipientAdd
	MessageTypeRecipientRemove
	MessageTypeCall
	MessageTypeChannelNameChange
	MessageTypeChannelIconChange
	MessageTypeChannelPinnedMessage
)

// Message represents a message inside a channel.
type Message struct {
	Timestamp       Timestamp           `json:"timestamp"`
	EditedTimestamp Timestamp           `json:"edited_timestamp"`
	Author          User                `json:"author"`
	Content         string              `json:"content"`
	Embeds          EmbedList           `json:"embeds"`
	Reactions       []MessageReaction   `json:"reactions"`
	Attachments     []MessageAttachment `json:"attachments"`
	Mentions        UserList            `json:"mentions"`
	MentionRoles    RoleIDList          `json:"mention_roles"`
	Nonce           *string             `json:"nonce,omitempty"`
	ID              MessageID           `json:"id"`
	ChannelID       ChannelID           `json:"channel_id"`
	MentionEveryone bool                `json:"mention_everyone"`
	TTS             bool                `json:"tts"`
	Type            MessageType         `json:"type"`
	Pinned          bool                `json:"pinned"`
}

// MessageReaction represents a reaction to a message.
type MessageReaction struct {
	Emoji Emoji `json:"emoji"`
	Count int32 `json:"count"`
	Me    bool  `json:"me"`
}

// MessageAttachment represents a message attachment.
type MessageAttachment struct {
	Filename string    `json:"filename"`
	URL      string    `json:"url"`
	ProxyURL string    `json:"proxy_url"`
	ID       Snowflake `json:"id"`
	Size     int32     `json:"size"`
	Height   int32     `json:"height"`
	Width    int32     `json:"width"`
}

// Emoji represents a custom emoji or a unicode character.
type Emoji struct {
	ID   *EmojiID `json:"id"`
	Name string   `json:"name"`
}

// Embed represents a message embed.
type Embed struct {
	Title       string    `json:"title,omitempty"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	Timestamp   Timestamp `json:"timestamp,omitempty"`
	Color       int32     `json:"color,omitempty"`
}

// CreateMessageParams represents the arguments for sending a message.
type CreateMessageParams struct {
	Content string    `json:"content"`
	Nonce   *string   `json:"nonce,omitempty"`
	Embeds  EmbedList `json:"embeds,omitempty"`
	TTS     bool      `json:"tts,omitempty"`
}

// EditMessageParams represents the arguments for editing a message. Nil
// fields are left unchanged.
type EditMessageParams struct {
	Content *string   `json:"content,omitempty"`
	Embeds  EmbedList `json:"embeds,omitempty"`
}

type deleteMessagesParams struct {
	Messages []MessageID `json:"messages"`
}

// GetMessagesParams filters a message listing. At most one of Around,
// Before and After may be set.
type GetMessagesParams struct {
	Around *MessageID
	Before *MessageID
	After  *MessageID
	Limit  int32
}

func (p GetMessagesParams) values() url.Values {
	values := url.Values{}

	switch {
	case p.Around != nil:
		values.Set("around", p.Around.String())
	case p.Before != nil:
		values.Set("before", p.Before.String())
	case p.After != nil:
		values.Set("after", p.After.String())
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(p.Limit), 10))
	}

	return values
}

// SearchParams filters a message search.
type SearchParams struct {
	Content  string
	AuthorID *UserID
	Limit    int32
	Offset   int32
}

func (p SearchParams) values() url.Values {
	values := url.Values{}

	if p.Content != "" {
		values.Set("content", p.Content)
	}

	if p.AuthorID != nil {
		values.Set("author_id", p.AuthorID.String())
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(p.Limit), 10))
	}

	if p.Offset > 0 {
		values.Set("offset", strconv.FormatInt(int64(p.Offset), 10))
	}

	return values
}

// SearchResult represents the outcome of a message search. Each entry in
// Messages is a matched message with its surrounding context.
type SearchResult struct {
	Messages     []MessageList `json:"messages"`
	TotalResults int64         `json:"total_results"`
}
