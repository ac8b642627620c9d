package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/learnhub/learnhub-api/internal/catalog"
	"github.com/learnhub/learnhub-api/internal/models"
	appErrors "github.com/learnhub/learnhub-api/pkg/errors"
)

type communityRepository interface {
	LikeCounts(ctx context.Context, postIDs []string) (map[string]int, error)
	LikedByUser(ctx context.Context, userID string, postIDs []string) (map[string]bool, error)
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
	HasLiked(ctx context.Context, postID, userID string) (bool, error)
	LikeCount(ctx context.Context, postID string) (int, error)
}

// LikeResult reports the post's state after a toggle.
type LikeResult struct {
	PostID string `json:"post_id"`
	Liked  bool   `json:"liked"`
	Likes  int    `json:"likes"`
}

const communityFeedCacheKey = "community:posts:anon"

// CommunityService merges the static post feed with per-user like state.
// Counts are always derived from the like rows so concurrent toggles
// cannot drift the displayed number. The anonymous feed is cacheable;
// per-viewer annotations are not.
type CommunityService struct {
	store  *catalog.Store
	repo   communityRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewCommunityService constructs a CommunityService instance.
func NewCommunityService(store *catalog.Store, repo communityRepository, cache *CacheService, logger *zap.Logger) *CommunityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommunityService{store: store, repo: repo, cache: cache, logger: logger}
}

// Posts returns the feed with like counts, annotated with the viewer's own
// likes when a user id is supplied. Anonymous viewers see Liked=false.
func (s *CommunityService) Posts(ctx context.Context, userID string) ([]models.CommunityPostView, error) {
	if userID == "" && s.cache.Enabled() {
		var cached []models.CommunityPostView
		if hit, err := s.cache.Get(ctx, communityFeedCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	posts := s.store.Posts()
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	counts, err := s.repo.LikeCounts(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load post likes")
	}

	liked := map[string]bool{}
	if userID != "" {
		liked, err = s.repo.LikedByUser(ctx, userID, ids)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load liked posts")
		}
	}

	views := make([]models.CommunityPostView, len(posts))
	for i, p := range posts {
		views[i] = models.CommunityPostView{
			CommunityPost: p,
			Likes:         counts[p.ID],
			Liked:         liked[p.ID],
		}
	}

	if userID == "" && s.cache.Enabled() {
		if err := s.cache.Set(ctx, communityFeedCacheKey, views, 0); err != nil {
			s.logger.Debug("failed to cache community feed", zap.Error(err))
		}
	}
	return views, nil
}

// ToggleLike flips the user's like on a post and returns the resulting
// state with a fresh authoritative count.
func (s *CommunityService) ToggleLike(ctx context.Context, postID, userID string) (*LikeResult, error) {
	if _, ok := s.store.PostByID(postID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "post not found")
	}

	hasLiked, err := s.repo.HasLiked(ctx, postID, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check like state")
	}

	if hasLiked {
		err = s.repo.Unlike(ctx, postID, userID)
	} else {
		err = s.repo.Like(ctx, postID, userID)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle like")
	}

	count, err := s.repo.LikeCount(ctx, postID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count likes")
	}

	if s.cache.Enabled() {
		if err := s.cache.Invalidate(ctx, communityFeedCacheKey); err != nil {
			s.logger.Debug("failed to invalidate community feed cache", zap.Error(err))
		}
	}

	return &LikeResult{PostID: postID, Liked: !hasLiked, Likes: count}, nil
}
