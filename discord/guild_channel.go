package discord

// GuildChannel represents a text or voice channel within a guild. The wire
// decodes both kinds into this one representation; Type carries the inner
// text/voice discriminant.
type GuildChannel struct {
	Name                 string                  `json:"name"`
	Topic                string                  `json:"topic"`
	LastMessageID        *MessageID              `json:"last_message_id"`
	ParentID             *ChannelID              `json:"parent_id"`
	PermissionOverwrites PermissionOverwriteList `json:"permission_overwrites"`
	ID                   ChannelID               `json:"id"`
	GuildID              GuildID                 `json:"guild_id"`
	Bitrate              int32                   `json:"bitrate"`
	UserLimit            int32                   `json:"user_limit"`
	Position             int32                   `json:"position"`
	Type                 ChannelType             `json:"type"`
	NSFW                 bool                    `json:"nsfw"`
}

// IsNSFW determines if the channel is marked not safe for work. Voice
// channels are never NSFW.
func (c GuildChannel) IsNSFW() bool {
	return c.Type == ChannelTypeText && c.NSFW
}

// Mention returns the clickable channel mention markup.
func (c GuildChannel) Mention() string {
	return c.ID.Mention()
}

// Delete removes the channel from its guild.
func (c GuildChannel) Delete(s *Session) error {
	return c.ID.Delete(s)
}

// SendMessage sends a message to the channel.
func (c GuildChannel) SendMessage(s *Session, params CreateMessageParams) (*Message, error) {
	return c.ID.SendMessage(s, params)
}

// Say sends a message with just the given content.
func (c GuildChannel) Say(s *Session, content string) (*Message, error) {
	return c.ID.Say(s, content)
}

// EditPermission creates or edits a permission overwrite on the channel.
func (c GuildChannel) EditPermission(s *Session, overwrite PermissionOverwrite) error {
	return c.ID.EditPermission(s, overwrite)
}

// DeletePermission deletes a member or role permission overwrite from the
// channel.
func (c GuildChannel) DeletePermission(s *Session, overwriteType PermissionOverwriteType) error {
	return c.ID.DeletePermission(s, overwriteType)
}
