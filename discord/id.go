package discord

// id.go contains the typed snowflake wrappers. ChannelID additionally owns
// the identifier-scoped operation catalogue in channel_id.go.

type GuildID Snowflake

func (s *GuildID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s GuildID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s GuildID) String() string {
	return Snowflake(s).String()
}

type ChannelID Snowflake

func (s *ChannelID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ChannelID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ChannelID) String() string {
	return Snowflake(s).String()
}

type MessageID Snowflake

func (s *MessageID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s MessageID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s MessageID) String() string {
	return Snowflake(s).String()
}

type UserID Snowflake

func (s *UserID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s UserID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s UserID) String() string {
	return Snowflake(s).String()
}

type RoleID Snowflake

func (s *RoleID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s RoleID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s RoleID) String() string {
	return Snowflake(s).String()
}

type EmojiID Snowflake

func (s *EmojiID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s EmojiID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

// Corresponding List types
type GuildIDList List[GuildID]
type ChannelIDList List[ChannelID]
type MessageIDList List[MessageID]
type UserIDList List[UserID]
type RoleIDList List[RoleID]

// ID functions
func (s *GuildID) IsNil() bool {
	return *s == 0
}

func (s *ChannelID) IsNil() bool {
	return *s == 0
}

func (s *UserID) IsNil() bool {
	return *s == 0
}
