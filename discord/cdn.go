package discord

import "fmt"

// EndpointCDN is the base every CDN path is rooted at. Override it to serve
// assets from a different host.
var EndpointCDN = "https://cdn.discordapp.com"

// EndpointGroupIcon formats the URL of a group's icon.
func EndpointGroupIcon(channelID ChannelID, hash string) string {
	return fmt.Sprintf("%s/channel-icons/%d/%s.webp", EndpointCDN, channelID, hash)
}

// EndpointUserAvatar formats the URL of a user's avatar.
func EndpointUserAvatar(userID UserID, hash string) string {
	return fmt.Sprintf("%s/avatars/%d/%s.webp", EndpointCDN, userID, hash)
}

// AvatarURL returns the formatted URL of the user's avatar, or nil if one
// is not set.
func (u User) AvatarURL() *string {
	if u.Avatar == nil {
		return nil
	}

	url := EndpointUserAvatar(u.ID, *u.Avatar)

	return &url
}
