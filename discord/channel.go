package discord

import (
	"strconv"

	"github.com/palaver-chat/palaver/palaverjson"
	"github.com/palaver-chat/palaver/pkg/lockcell"
)

// channel.go contains the polymorphic channel container and its wire
// decoding. The discriminant is resolved here and nowhere else.

// ChannelType represents a channel's wire discriminant.
type ChannelType uint16

const (
	ChannelTypeText ChannelType = iota
	ChannelTypePrivate
	ChannelTypeVoice
	ChannelTypeGroup
	ChannelTypeCategory
)

func (t ChannelType) String() string {
	switch t {
	case ChannelTypeText:
		return "text"
	case ChannelTypePrivate:
		return "private"
	case ChannelTypeVoice:
		return "voice"
	case ChannelTypeGroup:
		return "group"
	case ChannelTypeCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Channel is a container for any channel. Exactly one of the variant cells
// is non-nil; the constructors and UnmarshalJSON keep the variant and its
// payload in agreement, so holders never re-check it.
//
// The cells are shared: a Channel value, the process-wide state and any
// call site may hold the same cell and observe each other's updates.
type Channel struct {
	Group    *lockcell.Cell[Group]
	Guild    *lockcell.Cell[GuildChannel]
	Private  *lockcell.Cell[PrivateChannel]
	Category *lockcell.Cell[ChannelCategory]
}

// ChannelFromGroup wraps a group in a shared cell and returns it as a
// Channel.
func ChannelFromGroup(group Group) Channel {
	group.Type = ChannelTypeGroup

	return Channel{Group: lockcell.New(group)}
}

// ChannelFromGuild wraps a guild channel in a shared cell and returns it as
// a Channel.
func ChannelFromGuild(channel GuildChannel) Channel {
	if channel.Type != ChannelTypeVoice {
		channel.Type = ChannelTypeText
	}

	return Channel{Guild: lockcell.New(channel)}
}

// ChannelFromPrivate wraps a private channel in a shared cell and returns
// it as a Channel.
func ChannelFromPrivate(channel PrivateChannel) Channel {
	channel.Type = ChannelTypePrivate

	return Channel{Private: lockcell.New(channel)}
}

// ChannelFromCategory wraps a category in a shared cell and returns it as a
// Channel.
func ChannelFromCategory(category ChannelCategory) Channel {
	category.Type = ChannelTypeCategory

	return Channel{Category: lockcell.New(category)}
}

// UnmarshalJSON decodes a channel record, selecting the concrete variant
// from the required "type" discriminant. Wire types 0 and 2 both decode as
// a guild channel; the inner Type field keeps the text/voice distinction.
func (ch *Channel) UnmarshalJSON(b []byte) error {
	var probe struct {
		Type *ChannelType `json:"type"`
	}

	if err := palaverjson.Unmarshal(b, &probe); err != nil {
		return err
	}

	if probe.Type == nil {
		return &MissingFieldError{Field: "type"}
	}

	switch *probe.Type {
	case ChannelTypeText, ChannelTypeVoice:
		var channel GuildChannel

		if err := palaverjson.Unmarshal(b, &channel); err != nil {
			return err
		}

		*ch = Channel{Guild: lockcell.New(channel)}
	case ChannelTypePrivate:
		var channel PrivateChannel

		if err := palaverjson.Unmarshal(b, &channel); err != nil {
			return err
		}

		*ch = Channel{Private: lockcell.New(channel)}
	case ChannelTypeGroup:
		var group Group

		if err := palaverjson.Unmarshal(b, &group); err != nil {
			return err
		}

		*ch = Channel{Group: lockcell.New(group)}
	case ChannelTypeCategory:
		var category ChannelCategory

		if err := palaverjson.Unmarshal(b, &category); err != nil {
			return err
		}

		*ch = Channel{Category: lockcell.New(category)}
	default:
		return &UnknownVariantError{Kind: "channel type", Value: strconv.Itoa(int(*probe.Type))}
	}

	return nil
}

// UnmarshalChannel is the wire decode boundary: it decodes a generic
// channel record into a Channel, returning *MissingFieldError or
// *UnknownVariantError on a bad discriminant.
func UnmarshalChannel(b []byte) (Channel, error) {
	var ch Channel

	err := ch.UnmarshalJSON(b)

	return ch, err
}

func (ch Channel) MarshalJSON() ([]byte, error) {
	switch {
	case ch.Group != nil:
		return palaverjson.Marshal(ch.Group.Get())
	case ch.Guild != nil:
		return palaverjson.Marshal(ch.Guild.Get())
	case ch.Private != nil:
		return palaverjson.Marshal(ch.Private.Get())
	case ch.Category != nil:
		return palaverjson.Marshal(ch.Category.Get())
	default:
		return null, nil
	}
}

// Type returns the channel's discriminant. Guild channels report their
// inner text/voice distinction.
func (ch Channel) Type() ChannelType {
	switch {
	case ch.Group != nil:
		return ChannelTypeGroup
	case ch.Guild != nil:
		return lockcell.View(ch.Guild, func(c GuildChannel) ChannelType { return c.Type })
	case ch.Private != nil:
		return ChannelTypePrivate
	case ch.Category != nil:
		return ChannelTypeCategory
	default:
		return ChannelTypeText
	}
}

// ID retrieves the identifier of the inner channel.
func (ch Channel) ID() ChannelID {
	switch {
	case ch.Group != nil:
		return lockcell.View(ch.Group, func(g Group) ChannelID { return g.ChannelID })
	case ch.Guild != nil:
		return lockcell.View(ch.Guild, func(c GuildChannel) ChannelID { return c.ID })
	case ch.Private != nil:
		return lockcell.View(ch.Private, func(c PrivateChannel) ChannelID { return c.ID })
	case ch.Category != nil:
		return lockcell.View(ch.Category, func(c ChannelCategory) ChannelID { return c.ID })
	default:
		return 0
	}
}

// IsNSFW determines if the channel is marked not safe for work. Groups and
// private channels never are.
func (ch Channel) IsNSFW() bool {
	switch {
	case ch.Guild != nil:
		return lockcell.View(ch.Guild, func(c GuildChannel) bool { return c.IsNSFW() })
	case ch.Category != nil:
		return lockcell.View(ch.Category, func(c ChannelCategory) bool { return c.IsNSFW() })
	default:
		return false
	}
}

// String formats the channel into a "mentioned" string: the generated name
// for a group, the channel mention markup for a guild channel, the
// recipient's name for a private channel and the stored name for a
// category.
func (ch Channel) String() string {
	switch {
	case ch.Group != nil:
		return lockcell.View(ch.Group, func(g Group) string { return g.DisplayName() })
	case ch.Guild != nil:
		return lockcell.View(ch.Guild, func(c GuildChannel) string { return c.Mention() })
	case ch.Private != nil:
		return lockcell.View(ch.Private, func(c PrivateChannel) string { return c.Name() })
	case ch.Category != nil:
		return lockcell.View(ch.Category, func(c ChannelCategory) string { return c.Name })
	default:
		return ""
	}
}

// Delete removes the inner channel. Deletion is variant-specific: a group
// is left, a guild channel or category is deleted and a private channel is
// closed. There is no real function as deleting a group; the closest
// functionality is leaving it.
func (ch Channel) Delete(s *Session) error {
	switch {
	case ch.Group != nil:
		_, err := ch.Group.Get().Leave(s)

		return err
	case ch.Guild != nil:
		return ch.Guild.Get().Delete(s)
	case ch.Private != nil:
		return ch.Private.Get().Delete(s)
	case ch.Category != nil:
		return ch.Category.Get().Delete(s)
	default:
		return nil
	}
}

// The operations below are identifier-scoped: behavior depends only on the
// channel's identifier, so every variant forwards to the single
// implementation on ChannelID.

// SendMessage sends a message to the channel.
func (ch Channel) SendMessage(s *Session, params CreateMessageParams) (*Message, error) {
	return ch.ID().SendMessage(s, params)
}

// Say sends a message with just the given content.
func (ch Channel) Say(s *Session, content string) (*Message, error) {
	return ch.ID().Say(s, content)
}

// EditMessage edits a message in the channel given its ID.
func (ch Channel) EditMessage(s *Session, messageID MessageID, params EditMessageParams) (*Message, error) {
	return ch.ID().EditMessage(s, messageID, params)
}

// DeleteMessage deletes a message given its ID.
func (ch Channel) DeleteMessage(s *Session, messageID MessageID) error {
	return ch.ID().DeleteMessage(s, messageID)
}

// DeleteMessages bulk deletes messages by ID.
func (ch Channel) DeleteMessages(s *Session, messageIDs []MessageID) error {
	return ch.ID().DeleteMessages(s, messageIDs)
}

// Message fetches a single message from the channel.
func (ch Channel) Message(s *Session, messageID MessageID) (*Message, error) {
	return ch.ID().Message(s, messageID)
}

// Messages fetches messages from the channel, filtered by params.
func (ch Channel) Messages(s *Session, params GetMessagesParams) ([]Message, error) {
	return ch.ID().Messages(s, params)
}

// Search performs a message search in the channel.
func (ch Channel) Search(s *Session, params SearchParams) (*SearchResult, error) {
	return ch.ID().Search(s, params)
}

// Ack marks the channel as read up to the given message.
func (ch Channel) Ack(s *Session, messageID MessageID) error {
	return ch.ID().Ack(s, messageID)
}

// Pin pins a message in the channel given its ID.
func (ch Channel) Pin(s *Session, messageID MessageID) error {
	return ch.ID().Pin(s, messageID)
}

// Unpin unpins a message in the channel given its ID.
func (ch Channel) Unpin(s *Session, messageID MessageID) error {
	return ch.ID().Unpin(s, messageID)
}

// Pins fetches the messages pinned in the channel.
func (ch Channel) Pins(s *Session) ([]Message, error) {
	return ch.ID().Pins(s)
}

// CreateReaction reacts to a message with a custom emoji or unicode
// character.
func (ch Channel) CreateReaction(s *Session, messageID MessageID, emoji string) error {
	return ch.ID().CreateReaction(s, messageID, emoji)
}

// DeleteReaction deletes a reaction on a message.
func (ch Channel) DeleteReaction(s *Session, messageID MessageID, userID *UserID, emoji string) error {
	return ch.ID().DeleteReaction(s, messageID, userID, emoji)
}

// ReactionUsers fetches the users that reacted to a message with an emoji.
func (ch Channel) ReactionUsers(s *Session, messageID MessageID, emoji string, limit int32, after *UserID) ([]User, error) {
	return ch.ID().ReactionUsers(s, messageID, emoji, limit, after)
}

// BroadcastTyping broadcasts that the current user is typing in the
// channel.
func (ch Channel) BroadcastTyping(s *Session) error {
	return ch.ID().BroadcastTyping(s)
}

// EditPermission creates or edits a permission overwrite on the channel.
func (ch Channel) EditPermission(s *Session, overwrite PermissionOverwrite) error {
	return ch.ID().EditPermission(s, overwrite)
}

// DeletePermission deletes a member or role permission overwrite from the
// channel.
func (ch Channel) DeletePermission(s *Session, overwriteType PermissionOverwriteType) error {
	return ch.ID().DeletePermission(s, overwriteType)
}

// PermissionOverwriteType identifies the target of a permission overwrite:
// a member or a role. Exactly one of the fields is non-nil.
type PermissionOverwriteType struct {
	Member *UserID
	Role   *RoleID
}

// PermissionOverwriteMember targets a member's overwrite.
func PermissionOverwriteMember(userID UserID) PermissionOverwriteType {
	return PermissionOverwriteType{Member: &userID}
}

// PermissionOverwriteRole targets a role's overwrite.
func PermissionOverwriteRole(roleID RoleID) PermissionOverwriteType {
	return PermissionOverwriteType{Role: &roleID}
}

func (t PermissionOverwriteType) id() Snowflake {
	switch {
	case t.Member != nil:
		return Snowflake(*t.Member)
	case t.Role != nil:
		return Snowflake(*t.Role)
	default:
		return 0
	}
}

func (t PermissionOverwriteType) kind() string {
	if t.Member != nil {
		return "member"
	}

	return "role"
}

// PermissionOverwrite is a channel-specific permission overwrite for a
// member or role.
type PermissionOverwrite struct {
	Type  PermissionOverwriteType
	Allow Permissions
	Deny  Permissions
}

type permissionOverwriteData struct {
	Allow Permissions `json:"allow"`
	Deny  Permissions `json:"deny"`
	ID    Snowflake   `json:"id"`
	Kind  string      `json:"type"`
}

func (p *PermissionOverwrite) UnmarshalJSON(b []byte) error {
	var data permissionOverwriteData

	if err := palaverjson.Unmarshal(b, &data); err != nil {
		return err
	}

	switch data.Kind {
	case "member":
		p.Type = PermissionOverwriteMember(UserID(data.ID))
	case "role":
		p.Type = PermissionOverwriteRole(RoleID(data.ID))
	default:
		return &UnknownVariantError{Kind: "permission overwrite type", Value: data.Kind}
	}

	p.Allow = data.Allow
	p.Deny = data.Deny

	return nil
}

// UnmarshalPermissionOverwrite decodes a permission overwrite record,
// returning *UnknownVariantError when the kind string is outside
// {"member", "role"}.
func UnmarshalPermissionOverwrite(b []byte) (PermissionOverwrite, error) {
	var p PermissionOverwrite

	err := p.UnmarshalJSON(b)

	return p, err
}

func (p PermissionOverwrite) MarshalJSON() ([]byte, error) {
	return palaverjson.Marshal(permissionOverwriteData{
		Allow: p.Allow,
		Deny:  p.Deny,
		ID:    p.Type.id(),
		Kind:  p.Type.kind(),
	})
}
