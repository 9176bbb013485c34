package domain

// Admin console row models. These are flat management projections, not the
// per-viewer views of Post and Comment.

type AdminUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt Time   `json:"createdAt"`
}

type AdminPost struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	AuthorUsername string `json:"authorUsername"`
	ViewCount      int    `json:"viewCount"`
	LikeCount      int    `json:"likeCount"`
	CommentCount   int    `json:"commentCount"`
	CreatedAt      Time   `json:"createdAt"`
}

type AdminComment struct {
	ID             int64  `json:"id"`
	Content        string `json:"content"`
	AuthorUsername string `json:"authorUsername"`
	PostTitle      string `json:"postTitle"`
	LikeCount      int    `json:"likeCount"`
	CreatedAt      Time   `json:"createdAt"`
}

// Targets of an admin delete, carried through the confirmation form.
const (
	AdminTargetUser    = "user"
	AdminTargetPost    = "post"
	AdminTargetComment = "comment"
)
