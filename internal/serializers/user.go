// Package serializers builds the JSON payload shapes for user records.
package serializers

import (
	"github.com/1mdc/discourse-follow/internal/followlist"
	"github.com/1mdc/discourse-follow/internal/models"
	"github.com/1mdc/discourse-follow/internal/settings"
)

// BasicUser is the summary shape used for follower/following listings.
type BasicUser struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	AvatarTemplate string `json:"avatar_template"`
}

func NewBasicUser(u *models.User) BasicUser {
	return BasicUser{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		AvatarTemplate: u.AvatarTemplate,
	}
}

func NewBasicUsers(users []*models.User) []BasicUser {
	out := make([]BasicUser, 0, len(users))
	for _, u := range users {
		out = append(out, NewBasicUser(u))
	}
	return out
}

// UserProfile extends the summary with the follow fields shown on a
// profile page. Following is only included when there is a viewing user;
// the totals are only included when the statistics site setting is on.
type UserProfile struct {
	BasicUser
	Following      *bool `json:"following,omitempty"`
	TotalFollowers *int  `json:"total_followers,omitempty"`
	TotalFollowing *int  `json:"total_following,omitempty"`
}

// NewUserProfile serializes u given its follower and following id lists.
// viewerID is nil for anonymous viewers.
func NewUserProfile(u *models.User, followers, following []uint, viewerID *uint, st *settings.SiteSettings) UserProfile {
	p := UserProfile{BasicUser: NewBasicUser(u)}
	if viewerID != nil {
		f := followlist.Contains(followers, *viewerID)
		p.Following = &f
	}
	if st.FollowShowStatisticsOnProfile {
		tf := len(followers)
		tg := len(following)
		p.TotalFollowers = &tf
		p.TotalFollowing = &tg
	}
	return p
}
