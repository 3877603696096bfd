package discord

import (
	"strings"

	"github.com/palaver-chat/palaver/palaverjson"
	"github.com/palaver-chat/palaver/pkg/lockcell"
)

// Group represents a group direct-message channel.
type Group struct {
	Name       *string     `json:"name"`
	Icon       *string     `json:"icon"`
	Recipients Recipients  `json:"recipients"`
	OwnerID    UserID      `json:"owner_id"`
	ChannelID  ChannelID   `json:"id"`
	Type       ChannelType `json:"type"`
}

// DisplayName generates a name for the group.
//
// If an explicit name is set it is returned verbatim. Otherwise the name is
// generated as a comma separated list of recipient names in insertion
// order, or "Empty Group" if there are no recipients.
func (g Group) DisplayName() string {
	if g.Name != nil {
		return *g.Name
	}

	if g.Recipients.Len() == 0 {
		return "Empty Group"
	}

	var builder strings.Builder

	first := true

	g.Recipients.Each(func(_ UserID, cell *lockcell.Cell[User]) {
		if !first {
			builder.WriteString(", ")
		}

		builder.WriteString(lockcell.View(cell, func(u User) string { return u.DisplayName() }))

		first = false
	})

	return builder.String()
}

// IconURL returns the formatted URL of the group's icon, or nil if one is
// not set. No request is issued.
func (g Group) IconURL() *string {
	if g.Icon == nil {
		return nil
	}

	url := EndpointGroupIcon(g.ChannelID, *g.Icon)

	return &url
}

// AddRecipient adds the given user to the group. If the user is already a
// recipient nothing is done and no request is issued.
//
// Groups have a limit of 10 recipients, including the current user; the
// limit is enforced by the remote service. Local state is only updated by
// the remote service's acknowledgment, never optimistically.
func (g Group) AddRecipient(s *Session, userID UserID) error {
	if g.Recipients.Contains(userID) {
		return nil
	}

	return g.ChannelID.AddGroupRecipient(s, userID)
}

// RemoveRecipient removes a recipient from the group. If the user is not a
// recipient nothing is done and no request is issued.
//
// Only available to the group owner.
func (g Group) RemoveRecipient(s *Session, userID UserID) error {
	if !g.Recipients.Contains(userID) {
		return nil
	}

	return g.ChannelID.RemoveGroupRecipient(s, userID)
}

// Ack marks the group as read up to the given message.
func (g Group) Ack(s *Session, messageID MessageID) error {
	return g.ChannelID.Ack(s, messageID)
}

// Leave leaves the group. The returned snapshot is authoritative for the
// post-leave state.
func (g Group) Leave(s *Session) (*Group, error) {
	return g.ChannelID.LeaveGroup(s)
}

// BroadcastTyping broadcasts that the current user is typing in the group.
func (g Group) BroadcastTyping(s *Session) error {
	return g.ChannelID.BroadcastTyping(s)
}

// SendMessage sends a message to the group.
func (g Group) SendMessage(s *Session, params CreateMessageParams) (*Message, error) {
	return g.ChannelID.SendMessage(s, params)
}

// Say sends a message with just the given content.
func (g Group) Say(s *Session, content string) (*Message, error) {
	return g.ChannelID.Say(s, content)
}

// EditMessage edits a message in the group given its ID.
func (g Group) EditMessage(s *Session, messageID MessageID, params EditMessageParams) (*Message, error) {
	return g.ChannelID.EditMessage(s, messageID, params)
}

// DeleteMessages bulk deletes messages by ID.
func (g Group) DeleteMessages(s *Session, messageIDs []MessageID) error {
	return g.ChannelID.DeleteMessages(s, messageIDs)
}

// Message fetches a single message from the group.
func (g Group) Message(s *Session, messageID MessageID) (*Message, error) {
	return g.ChannelID.Message(s, messageID)
}

// Messages fetches messages from the group, filtered by params.
func (g Group) Messages(s *Session, params GetMessagesParams) ([]Message, error) {
	return g.ChannelID.Messages(s, params)
}

// Search performs a message search in the group. Bot accounts cannot
// search.
func (g Group) Search(s *Session, params SearchParams) (*SearchResult, error) {
	return g.ChannelID.Search(s, params)
}

// Pins fetches the messages pinned in the group.
func (g Group) Pins(s *Session) ([]Message, error) {
	return g.ChannelID.Pins(s)
}

// Pin pins a message in the group given its ID.
func (g Group) Pin(s *Session, messageID MessageID) error {
	return g.ChannelID.Pin(s, messageID)
}

// Unpin unpins a message in the group given its ID.
func (g Group) Unpin(s *Session, messageID MessageID) error {
	return g.ChannelID.Unpin(s, messageID)
}

// CreateReaction reacts to a message in the group.
func (g Group) CreateReaction(s *Session, messageID MessageID, emoji string) error {
	return g.ChannelID.CreateReaction(s, messageID, emoji)
}

// DeleteReaction deletes a reaction on a message in the group.
func (g Group) DeleteReaction(s *Session, messageID MessageID, userID *UserID, emoji string) error {
	return g.ChannelID.DeleteReaction(s, messageID, userID, emoji)
}

// ReactionUsers fetches the users that reacted to a message with an emoji.
func (g Group) ReactionUsers(s *Session, messageID MessageID, emoji string, limit int32, after *UserID) ([]User, error) {
	return g.ChannelID.ReactionUsers(s, messageID, emoji, limit, after)
}

// DeletePermission deletes a member or role permission overwrite.
func (g Group) DeletePermission(s *Session, overwriteType PermissionOverwriteType) error {
	return g.ChannelID.DeletePermission(s, overwriteType)
}

// Recipients is an insertion-ordered set of shared user cells keyed by user
// ID. The zero value is an empty set.
//
// Recipients is persistent: With and Without return a derived set and never
// mutate the receiver, so a Group snapshot taken from a shared cell stays
// safe to read while the cell is updated.
type Recipients struct {
	order []UserID
	cells map[UserID]*lockcell.Cell[User]
}

// NewRecipients builds a recipient set from users in the given order.
func NewRecipients(users ...User) Recipients {
	var r Recipients

	for _, user := range users {
		r = r.With(lockcell.New(user))
	}

	return r
}

// Len returns the number of recipients.
func (r Recipients) Len() int {
	return len(r.order)
}

// Contains reports whether the user is a recipient.
func (r Recipients) Contains(userID UserID) bool {
	_, ok := r.cells[userID]

	return ok
}

// Cell returns the shared cell for the user, or nil.
func (r Recipients) Cell(userID UserID) *lockcell.Cell[User] {
	return r.cells[userID]
}

// Each calls fn for every recipient in insertion order.
func (r Recipients) Each(fn func(userID UserID, cell *lockcell.Cell[User])) {
	for _, userID := range r.order {
		fn(userID, r.cells[userID])
	}
}

// With returns a set that additionally contains the given cell. Adding a
// user already present replaces its cell in place.
func (r Recipients) With(cell *lockcell.Cell[User]) Recipients {
	userID := lockcell.View(cell, func(u User) UserID { return u.ID })

	next := r.clone()
	if _, ok := next.cells[userID]; !ok {
		next.order = append(next.order, userID)
	}

	next.cells[userID] = cell

	return next
}

// Without returns a set with the given user removed.
func (r Recipients) Without(userID UserID) Recipients {
	if !r.Contains(userID) {
		return r
	}

	next := Recipients{
		order: make([]UserID, 0, len(r.order)-1),
		cells: make(map[UserID]*lockcell.Cell[User], len(r.cells)-1),
	}

	for _, id := range r.order {
		if id == userID {
			continue
		}

		next.order = append(next.order, id)
		next.cells[id] = r.cells[id]
	}

	return next
}

func (r Recipients) clone() Recipients {
	next := Recipients{
		order: make([]UserID, len(r.order)),
		cells: make(map[UserID]*lockcell.Cell[User], len(r.cells)+1),
	}

	copy(next.order, r.order)

	for id, cell := range r.cells {
		next.cells[id] = cell
	}

	return next
}

func (r *Recipients) UnmarshalJSON(b []byte) error {
	var users []User

	if err := palaverjson.Unmarshal(b, &users); err != nil {
		return err
	}

	*r = NewRecipients(users...)

	return nil
}

func (r Recipients) MarshalJSON() ([]byte, error) {
	users := make(UserList, 0, len(r.order))

	r.Each(func(_ UserID, cell *lockcell.Cell[User]) {
		users = append(users, cell.Get())
	})

	return palaverjson.Marshal(users)
}
