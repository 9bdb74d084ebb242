package stores

import (
	"context"
	"errors"

	"github.com/1mdc/discourse-follow/internal/cache"
	"github.com/1mdc/discourse-follow/internal/followlist"
	"github.com/1mdc/discourse-follow/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowStore owns the directed follow edges between users. Edges are
// denormalized onto both endpoints: the followee's "followers" list and
// the follower's "following" list, kept in sync by SetFollow.
type FollowStore interface {
	// Following returns the ids the user follows, in append order.
	Following(ctx context.Context, userID uint) ([]uint, error)
	// Followers returns the ids following the user, in append order.
	Followers(ctx context.Context, userID uint) ([]uint, error)
	// SetFollow creates (follow=true) or removes (follow=false) the edge
	// actor->target on both endpoints. Both directions are idempotent. The
	// returned bool is the observed membership of actor in the target's
	// followers list after the write, re-read from storage rather than
	// echoed from the request.
	SetFollow(ctx context.Context, targetID, actorID uint, follow bool) (bool, error)
}

// GormFollowStore implements FollowStore on the user custom fields table,
// with an optional read-through cache of the id lists.
type GormFollowStore struct {
	DB    *gorm.DB
	Cache cache.FollowCache
}

func (s *GormFollowStore) Following(ctx context.Context, userID uint) ([]uint, error) {
	return s.list(ctx, userID, models.FollowingField)
}

func (s *GormFollowStore) Followers(ctx context.Context, userID uint) ([]uint, error) {
	return s.list(ctx, userID, models.FollowersField)
}

func (s *GormFollowStore) list(ctx context.Context, userID uint, name string) ([]uint, error) {
	if s.Cache != nil {
		if ids, ok := s.Cache.GetList(ctx, userID, name); ok {
			return ids, nil
		}
	}
	ids, err := readList(s.DB.WithContext(ctx), userID, name)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.SetList(ctx, userID, name, ids)
	}
	return ids, nil
}

func (s *GormFollowStore) SetFollow(ctx context.Context, targetID, actorID uint, follow bool) (bool, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		followers, err := readList(tx, targetID, models.FollowersField)
		if err != nil {
			return err
		}
		following, err := readList(tx, actorID, models.FollowingField)
		if err != nil {
			return err
		}

		if follow {
			followers = followlist.Append(followers, actorID)
			following = followlist.Append(following, targetID)
		} else {
			followers = followlist.Remove(followers, actorID)
			following = followlist.Remove(following, targetID)
		}

		// Target row first, then the acting user's row.
		if err := writeList(tx, targetID, models.FollowersField, followers); err != nil {
			return err
		}
		return writeList(tx, actorID, models.FollowingField, following)
	})
	if err != nil {
		return false, err
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, targetID, models.FollowersField)
		s.Cache.Invalidate(ctx, actorID, models.FollowingField)
	}

	// Report observed state, not requested state: re-read the target's
	// followers and check membership.
	followers, err := readList(s.DB.WithContext(ctx), targetID, models.FollowersField)
	if err != nil {
		return false, err
	}
	return followlist.Contains(followers, actorID), nil
}

func readList(tx *gorm.DB, userID uint, name string) ([]uint, error) {
	var f models.UserCustomField
	err := tx.Where("user_id = ? AND name = ?", userID, name).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return followlist.Decode(f.Value), nil
}

func writeList(tx *gorm.DB, userID uint, name string, ids []uint) error {
	field := models.UserCustomField{
		UserID: userID,
		Name:   name,
		Value:  followlist.Encode(ids),
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&field).Error
}
