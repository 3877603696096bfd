package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palaver-chat/palaver/discord"
	"github.com/palaver-chat/palaver/state"
)

func TestStateCurrentUser(t *testing.T) {
	t.Parallel()

	st := state.NewState()

	_, ok := st.CurrentUser()
	assert.False(t, ok)

	st.SetCurrentUser(discord.User{ID: 7, Username: "alice", Bot: true})

	user, ok := st.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, discord.UserID(7), user.ID)
	assert.True(t, user.Bot)

	var identity discord.IdentityProvider = st

	identityUser, ok := identity.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, user, identityUser)
}

func TestStateChannels(t *testing.T) {
	t.Parallel()

	st := state.NewState()

	channel := discord.ChannelFromGuild(discord.GuildChannel{
		ID:   discord.ChannelID(1),
		Name: "general",
		Type: discord.ChannelTypeText,
	})

	st.StoreChannel(channel)

	got, ok := st.GetChannel(discord.ChannelID(1))
	assert.True(t, ok)
	assert.Equal(t, discord.ChannelID(1), got.ID())

	_, ok = st.GetChannel(discord.ChannelID(2))
	assert.False(t, ok)

	st.RemoveChannel(discord.ChannelID(1))

	_, ok = st.GetChannel(discord.ChannelID(1))
	assert.False(t, ok)
}

// A cached channel shares its cell with the caller, so mutations through
// either are observed by both.
func TestStateChannelCellIsShared(t *testing.T) {
	t.Parallel()

	st := state.NewState()

	channel := discord.ChannelFromGuild(discord.GuildChannel{
		ID:   discord.ChannelID(1),
		Name: "before",
		Type: discord.ChannelTypeText,
	})

	st.StoreChannel(channel)

	channel.Guild.With(func(value *discord.GuildChannel) {
		value.Name = "after"
	})

	cached, ok := st.GetChannel(discord.ChannelID(1))
	assert.True(t, ok)
	assert.Equal(t, "after", cached.Guild.Get().Name)
}

func TestStateInternUser(t *testing.T) {
	t.Parallel()

	st := state.NewState()

	first := st.InternUser(discord.User{ID: 7, Username: "alice"})
	second := st.InternUser(discord.User{ID: 7, Username: "alice2"})

	assert.Same(t, first, second)
	assert.Equal(t, "alice2", first.Get().Username)

	other := st.InternUser(discord.User{ID: 8, Username: "bob"})
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, st.Users.Count())
}
