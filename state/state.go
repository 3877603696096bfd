// Package state is the optional process-wide read-through cache: previously
// observed channels and users, plus the identity of the current user. It
// holds the same shared cells seen elsewhere; it does not reconcile
// independently decoded cells for the same remote object.
package state

import (
	csmap "github.com/mhmtszr/concurrent-swiss-map"
	"go.uber.org/atomic"

	"github.com/palaver-chat/palaver/discord"
	"github.com/palaver-chat/palaver/pkg/lockcell"
)

// A single key to value cache.
type Cache[K comparable, V any] struct {
	inner *csmap.CsMap[K, V]
}

func NewCache[K comparable, V any](size uint64) Cache[K, V] {
	return Cache[K, V]{
		inner: csmap.Create(
			csmap.WithSize[K, V](size),
		),
	}
}

func (c Cache[K, V]) Load(key K) (value V, ok bool) {
	return c.inner.Load(key)
}

func (c Cache[K, V]) Store(key K, value V) {
	c.inner.Store(key, value)
}

func (c Cache[K, V]) Delete(key K) {
	c.inner.Delete(key)
}

func (c Cache[K, V]) Count() int {
	return c.inner.Count()
}

// Range If the callback function returns true iteration will stop.
func (c Cache[K, V]) Range(fn func(key K, value V) bool) {
	c.inner.Range(fn)
}

// State stores everything the process has observed. Updating a channel cell
// and updating its cache entry are independent critical sections; callers
// must not assume cross-object atomicity.
type State struct {
	Channels Cache[discord.ChannelID, discord.Channel]
	Users    Cache[discord.UserID, *lockcell.Cell[discord.User]]

	currentUser atomic.Pointer[discord.User]
}

func NewState() *State {
	return &State{
		Channels: NewCache[discord.ChannelID, discord.Channel](50),
		Users:    NewCache[discord.UserID, *lockcell.Cell[discord.User]](100),
	}
}

// SetCurrentUser records the account the process is authenticated as.
func (st *State) SetCurrentUser(user discord.User) {
	st.currentUser.Store(&user)
}

// CurrentUser returns the current user, if one has been recorded. State
// satisfies discord.IdentityProvider.
func (st *State) CurrentUser() (discord.User, bool) {
	user := st.currentUser.Load()
	if user == nil {
		return discord.User{}, false
	}

	return *user, true
}

// StoreChannel caches the channel under its identifier. The cell inside the
// channel is shared, not copied; later mutations through any holder are
// visible to cache readers.
func (st *State) StoreChannel(channel discord.Channel) {
	st.Channels.Store(channel.ID(), channel)
}

// GetChannel returns the channel with the given identifier from the cache.
// Returns a boolean to signify a match or not.
func (st *State) GetChannel(channelID discord.ChannelID) (discord.Channel, bool) {
	return st.Channels.Load(channelID)
}

// RemoveChannel drops the cache entry. Holders of the channel's cell keep
// it alive; removal only means the cache no longer references it.
func (st *State) RemoveChannel(channelID discord.ChannelID) {
	st.Channels.Delete(channelID)
}

// InternUser returns the process-wide cell for the user, creating it from
// the given snapshot if absent and refreshing the stored value otherwise.
func (st *State) InternUser(user discord.User) *lockcell.Cell[discord.User] {
	if cell, ok := st.Users.Load(user.ID); ok {
		cell.Set(user)

		return cell
	}

	cell := lockcell.New(user)
	st.Users.Store(user.ID, cell)

	return cell
}
