package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// CommunityRepository persists per-user post likes. The like count shown
// to clients is always derived from these rows; there is no separate
// counter to drift.
type CommunityRepository struct {
	db *sqlx.DB
}

// NewCommunityRepository constructs the repository.
func NewCommunityRepository(db *sqlx.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// LikeCounts returns the like count per post id for the given posts.
// Posts with no likes are absent from the result map.
func (r *CommunityRepository) LikeCounts(ctx context.Context, postIDs []string) (map[string]int, error) {
	if len(postIDs) == 0 {
		return map[string]int{}, nil
	}
	placeholders := make([]string, len(postIDs))
	args := make([]interface{}, len(postIDs))
	for i, id := range postIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT post_id, COUNT(*) AS likes FROM community_post_likes
        WHERE post_id IN (%s) GROUP BY post_id`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count post likes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int, len(postIDs))
	for rows.Next() {
		var postID string
		var likes int
		if err := rows.Scan(&postID, &likes); err != nil {
			return nil, fmt.Errorf("scan post likes: %w", err)
		}
		counts[postID] = likes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post likes: %w", err)
	}
	return counts, nil
}

// LikedByUser returns the set of post ids, among the given ones, that the
// user has liked.
func (r *CommunityRepository) LikedByUser(ctx context.Context, userID string, postIDs []string) (map[string]bool, error) {
	if len(postIDs) == 0 {
		return map[string]bool{}, nil
	}
	placeholders := make([]string, len(postIDs))
	args := make([]interface{}, 0, len(postIDs)+1)
	args = append(args, userID)
	for i, id := range postIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}
	query := fmt.Sprintf(`SELECT post_id FROM community_post_likes
        WHERE user_id = $1 AND post_id IN (%s)`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list liked posts: %w", err)
	}
	defer rows.Close()

	liked := make(map[string]bool, len(postIDs))
	for rows.Next() {
		var postID string
		if err := rows.Scan(&postID); err != nil {
			return nil, fmt.Errorf("scan liked post: %w", err)
		}
		liked[postID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate liked posts: %w", err)
	}
	return liked, nil
}

// Like records the user's like for a post. Re-liking is a no-op.
func (r *CommunityRepository) Like(ctx context.Context, postID, userID string) error {
	const query = `INSERT INTO community_post_likes (post_id, user_id) VALUES ($1, $2)
        ON CONFLICT (post_id, user_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		return fmt.Errorf("like post: %w", err)
	}
	return nil
}

// Unlike removes the user's like for a post.
func (r *CommunityRepository) Unlike(ctx context.Context, postID, userID string) error {
	const query = `DELETE FROM community_post_likes WHERE post_id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	return nil
}

// HasLiked reports whether the user has liked the post.
func (r *CommunityRepository) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	const query = `SELECT COUNT(*) FROM community_post_likes WHERE post_id = $1 AND user_id = $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, postID, userID); err != nil {
		return false, fmt.Errorf("check post like: %w", err)
	}
	return count > 0, nil
}

// LikeCount returns the authoritative like count for one post.
func (r *CommunityRepository) LikeCount(ctx context.Context, postID string) (int, error) {
	const query = `SELECT COUNT(*) FROM community_post_likes WHERE post_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, postID); err != nil {
		return 0, fmt.Errorf("count post likes: %w", err)
	}
	return count, nil
}
