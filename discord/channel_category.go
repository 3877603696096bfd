package discord

// ChannelCategory represents a category that guild channels can be grouped
// under.
type ChannelCategory struct {
	Name                 string                  `json:"name"`
	ParentID             *ChannelID              `json:"parent_id"`
	PermissionOverwrites PermissionOverwriteList `json:"permission_overwrites"`
	ID                   ChannelID               `json:"id"`
	GuildID              GuildID                 `json:"guild_id"`
	Position             int32                   `json:"position"`
	Type                 ChannelType             `json:"type"`
	NSFW                 bool                    `json:"nsfw"`
}

// IsNSFW determines if the category is marked not safe for work.
func (c ChannelCategory) IsNSFW() bool {
	return c.NSFW
}

// Delete removes the category from its guild. Channels under the category
// are not deleted.
func (c ChannelCategory) Delete(s *Session) error {
	return c.ID.Delete(s)
}
