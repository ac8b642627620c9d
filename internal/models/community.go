package models

import "time"

// PostCategory classifies community posts.
type PostCategory string

const (
	PostDiscussion PostCategory = "Discussion"
	PostHelp       PostCategory = "Help"
	PostShowcase   PostCategory = "Showcase"
	PostNews       PostCategory = "News"
)

// CommunityPost is static seed content for the community page. Like counts
// are not part of the seed; they live with the persistence collaborator.
type CommunityPost struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	AuthorName  string       `json:"author_name"`
	AuthorLevel string       `json:"author_level"`
	Category    PostCategory `json:"category"`
	Tags        []string     `json:"tags"`
	Replies     int          `json:"replies"`
	CreatedAt   time.Time    `json:"created_at"`
}

// CommunityPostView is a post decorated with the server-held like count
// and, for an authenticated viewer, whether they liked it.
type CommunityPostView struct {
	CommunityPost
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}
