package discord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palaver-chat/palaver/discord"
	"github.com/palaver-chat/palaver/palaverjson"
)

func TestChannelDecodeDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  string
		wantType discord.ChannelType
		wantID   discord.ChannelID
	}{
		{
			name:     "text decodes as guild channel",
			payload:  `{"id":"10","type":0,"guild_id":"2","name":"general"}`,
			wantType: discord.ChannelTypeText,
			wantID:   10,
		},
		{
			name:     "voice decodes as guild channel",
			payload:  `{"id":"11","type":2,"guild_id":"2","name":"voice-chat"}`,
			wantType: discord.ChannelTypeVoice,
			wantID:   11,
		},
		{
			name:     "private",
			payload:  `{"id":"12","type":1,"recipients":[{"id":"7","username":"alice"}]}`,
			wantType: discord.ChannelTypePrivate,
			wantID:   12,
		},
		{
			name:     "group",
			payload:  `{"id":"13","type":3,"owner_id":"7","recipients":[]}`,
			wantType: discord.ChannelTypeGroup,
			wantID:   13,
		},
		{
			name:     "category",
			payload:  `{"id":"14","type":4,"name":"info"}`,
			wantType: discord.ChannelTypeCategory,
			wantID:   14,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			channel, err := discord.UnmarshalChannel([]byte(test.payload))
			assert.NoError(t, err)

			assert.Equal(t, test.wantType, channel.Type())
			assert.Equal(t, test.wantID, channel.ID())

			switch test.wantType {
			case discord.ChannelTypeText, discord.ChannelTypeVoice:
				assert.NotNil(t, channel.Guild)
			case discord.ChannelTypePrivate:
				assert.NotNil(t, channel.Private)
			case discord.ChannelTypeGroup:
				assert.NotNil(t, channel.Group)
			case discord.ChannelTypeCategory:
				assert.NotNil(t, channel.Category)
			}
		})
	}
}

func TestChannelDecodeUnknownType(t *testing.T) {
	t.Parallel()

	_, err := discord.UnmarshalChannel([]byte(`{"id":"10","type":9}`))

	var unknownVariant *discord.UnknownVariantError

	assert.ErrorAs(t, err, &unknownVariant)
	assert.Equal(t, "9", unknownVariant.Value)
}

func TestChannelDecodeMissingType(t *testing.T) {
	t.Parallel()

	_, err := discord.UnmarshalChannel([]byte(`{"id":"10"}`))

	var missingField *discord.MissingFieldError

	assert.ErrorAs(t, err, &missingField)
	assert.Equal(t, "type", missingField.Field)
}

func TestChannelID(t *testing.T) {
	t.Parallel()

	group := discord.ChannelFromGroup(discord.Group{ChannelID: 1})
	guild := discord.ChannelFromGuild(discord.GuildChannel{ID: 2})
	private := discord.ChannelFromPrivate(discord.PrivateChannel{ID: 3})
	category := discord.ChannelFromCategory(discord.ChannelCategory{ID: 4})

	assert.Equal(t, discord.ChannelID(1), group.ID())
	assert.Equal(t, discord.ChannelID(2), guild.ID())
	assert.Equal(t, discord.ChannelID(3), private.ID())
	assert.Equal(t, discord.ChannelID(4), category.ID())
}

func TestChannelIsNSFW(t *testing.T) {
	t.Parallel()

	assert.True(t, discord.ChannelFromGuild(discord.GuildChannel{ID: 1, NSFW: true}).IsNSFW())
	assert.False(t, discord.ChannelFromGuild(discord.GuildChannel{ID: 1, Type: discord.ChannelTypeVoice, NSFW: true}).IsNSFW())
	assert.True(t, discord.ChannelFromCategory(discord.ChannelCategory{ID: 2, NSFW: true}).IsNSFW())
	assert.False(t, discord.ChannelFromGroup(discord.Group{ChannelID: 3}).IsNSFW())
	assert.False(t, discord.ChannelFromPrivate(discord.PrivateChannel{ID: 4}).IsNSFW())
}

func TestChannelString(t *testing.T) {
	t.Parallel()

	group := discord.ChannelFromGroup(discord.Group{
		ChannelID:  1,
		Recipients: discord.NewRecipients(discord.User{ID: 7, Username: "alice"}),
	})
	assert.Equal(t, "alice", group.String())

	guild := discord.ChannelFromGuild(discord.GuildChannel{ID: 2, Name: "general"})
	assert.Equal(t, "<#2>", guild.String())

	private := discord.ChannelFromPrivate(discord.PrivateChannel{
		ID:        3,
		Recipient: lockcellUser(discord.User{ID: 8, Username: "bob"}),
	})
	assert.Equal(t, "bob", private.String())

	category := discord.ChannelFromCategory(discord.ChannelCategory{ID: 4, Name: "info"})
	assert.Equal(t, "info", category.String())
}

func TestChannelRoundTripKeepsVariant(t *testing.T) {
	t.Parallel()

	payload := `{"id":"13","type":3,"owner_id":"7","name":"book club","recipients":[{"id":"7","username":"alice"}]}`

	channel, err := discord.UnmarshalChannel([]byte(payload))
	assert.NoError(t, err)

	encoded, err := palaverjson.Marshal(channel)
	assert.NoError(t, err)

	decoded, err := discord.UnmarshalChannel(encoded)
	assert.NoError(t, err)

	assert.Equal(t, discord.ChannelTypeGroup, decoded.Type())
	assert.Equal(t, discord.ChannelID(13), decoded.ID())
	assert.Equal(t, "book club", decoded.String())
}

func TestPermissionOverwriteRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overwrite discord.PermissionOverwrite
	}{
		{
			name: "member",
			overwrite: discord.PermissionOverwrite{
				Type:  discord.PermissionOverwriteMember(42),
				Allow: 8,
				Deny:  2,
			},
		},
		{
			name: "role",
			overwrite: discord.PermissionOverwrite{
				Type:  discord.PermissionOverwriteRole(7),
				Allow: 1024,
			},
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := palaverjson.Marshal(test.overwrite)
			assert.NoError(t, err)

			decoded, err := discord.UnmarshalPermissionOverwrite(encoded)
			assert.NoError(t, err)

			assert.Equal(t, test.overwrite, decoded)
		})
	}
}

func TestPermissionOverwriteUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := discord.UnmarshalPermissionOverwrite([]byte(`{"allow":"0","deny":"0","id":"42","type":"everyone"}`))

	var unknownVariant *discord.UnknownVariantError

	assert.ErrorAs(t, err, &unknownVariant)
	assert.Equal(t, "everyone", unknownVariant.Value)
}

func TestChannelTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", discord.ChannelTypeText.String())
	assert.Equal(t, "private", discord.ChannelTypePrivate.String())
	assert.Equal(t, "voice", discord.ChannelTypeVoice.String())
	assert.Equal(t, "group", discord.ChannelTypeGroup.String())
	assert.Equal(t, "category", discord.ChannelTypeCategory.String())
}

func TestChannelDeletePerVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		channel func() discord.Channel
		body    string
	}{
		{
			name:    "group leave",
			channel: func() discord.Channel { return discord.ChannelFromGroup(discord.Group{ChannelID: 1}) },
			body:    `{"id":"1","type":3,"owner_id":"7","recipients":[]}`,
		},
		{
			name:    "guild delete",
			channel: func() discord.Channel { return discord.ChannelFromGuild(discord.GuildChannel{ID: 1}) },
		},
		{
			name:    "private close",
			channel: func() discord.Channel {
				return discord.ChannelFromPrivate(discord.PrivateChannel{
					ID:        1,
					Recipient: lockcellUser(discord.User{ID: 7, Username: "alice"}),
				})
			},
		},
		{
			name:    "category delete",
			channel: func() discord.Channel { return discord.ChannelFromCategory(discord.ChannelCategory{ID: 1}) },
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rest := &recordingRest{}
			if test.body != "" {
				rest.respBody = []byte(test.body)
			}

			session := newTestSession(rest)

			err := test.channel().Delete(session)

			assert.NoError(t, err)
			assert.Equal(t, 1, rest.calls)
			assert.Equal(t, "DELETE", rest.methods[0])
			assert.Equal(t, "/channels/1", rest.endpoints[0])
		})
	}
}

func TestChannelUniformForwarding(t *testing.T) {
	t.Parallel()

	channels := []discord.Channel{
		discord.ChannelFromGroup(discord.Group{ChannelID: 5}),
		discord.ChannelFromGuild(discord.GuildChannel{ID: 5}),
		discord.ChannelFromPrivate(discord.PrivateChannel{
			ID:        5,
			Recipient: lockcellUser(discord.User{ID: 7, Username: "alice"}),
		}),
		discord.ChannelFromCategory(discord.ChannelCategory{ID: 5}),
	}

	// Identifier-scoped operations behave identically for every variant.
	for _, channel := range channels {
		rest := &recordingRest{}
		session := newTestSession(rest)

		_, err := channel.Say(session, "hello")
		assert.NoError(t, err)

		err = channel.Pin(session, 2)
		assert.NoError(t, err)

		assert.Equal(t, []string{"/channels/5/messages", "/channels/5/pins/2"}, rest.endpoints)
	}
}
