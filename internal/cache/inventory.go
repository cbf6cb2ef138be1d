package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix      = "post:%d"
	TagCountsKey       = "tags:counts"
	PopularSearchesKey = "searches:popular"
	AnnouncementsKey   = "announcements:all"
	UserKeyPrefix      = "user:%s"
)

const (
	PostTTL            = 5 * time.Minute
	TagCountsTTL       = 10 * time.Minute
	PopularSearchesTTL = 1 * time.Minute
	AnnouncementsTTL   = 10 * time.Minute
	UserTTL            = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func UserKey(email string) string {
	return fmt.Sprintf(UserKeyPrefix, email)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the cached post detail along with the tag summary,
// since a post mutation can change tag counts.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, TagCountsKey)
}

func InvalidateUser(ctx context.Context, email string) {
	Invalidate(ctx, UserKey(email))
}

func InvalidateAnnouncements(ctx context.Context) {
	Invalidate(ctx, AnnouncementsKey)
}
