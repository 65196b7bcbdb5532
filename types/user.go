package types

import "Blackout/models"

type EditProfileRequest struct {
	Username string `form:"username"`
	Bio      string `form:"bio"`
	Phone    string `form:"phone"`
}

type ProfileView struct {
	User           *models.Users
	Posts          []*PostView
	FollowersCount int64
	FollowingCount int64
	IsFollowing    bool
	IsOwnProfile   bool
}

type FollowResponse struct {
	Following      bool  `json:"following"`
	FollowersCount int64 `json:"followers_count"`
}
