package domain

// Comment mirrors one comment under a post, with the same per-viewer
// projections as Post.
type Comment struct {
	ID                 int64  `json:"id"`
	Content            string `json:"content"`
	AuthorUsername     string `json:"authorUsername"`
	CreatedAt          Time   `json:"createdAt"`
	UpdatedAt          Time   `json:"updatedAt"`
	LikeCount          int    `json:"likeCount"`
	LikedByCurrentUser bool   `json:"likedByCurrentUser"`
	IsAuthor           bool   `json:"isAuthor"`
}

// Edited reports whether the comment was modified after creation.
func (c *Comment) Edited() bool {
	return !c.UpdatedAt.IsZero() && !c.UpdatedAt.Equal(c.CreatedAt.Time)
}

// CommentLike is the backend's response to a comment like toggle: the row
// patch for exactly the affected comment.
type CommentLike struct {
	LikeCount          int  `json:"likeCount"`
	LikedByCurrentUser bool `json:"likedByCurrentUser"`
}
