package domain

// Post mirrors one board post as the backend projects it for the current
// viewer. LikedByCurrentUser and IsAuthor are per-viewer projections computed
// by the backend per request, never intrinsic attributes of the record.
type Post struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	Content            string `json:"content"`
	AuthorUsername     string `json:"authorUsername"`
	CreatedAt          Time   `json:"createdAt"`
	UpdatedAt          Time   `json:"updatedAt"`
	ViewCount          int    `json:"viewCount"`
	LikeCount          int    `json:"likeCount"`
	CommentCount       int    `json:"commentCount"`
	LikedByCurrentUser bool   `json:"likedByCurrentUser"`
	IsAuthor           bool   `json:"isAuthor"`
}

// Edited reports whether the post was modified after creation.
func (p *Post) Edited() bool {
	return !p.UpdatedAt.IsZero() && !p.UpdatedAt.Equal(p.CreatedAt.Time)
}

// PostPage is one page of a post listing, in the backend's Spring-style
// page envelope. Number is the 0-based page index.
type PostPage struct {
	Content       []Post `json:"content"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	Size          int    `json:"size"`
	Number        int    `json:"number"`
}

// Search type filters accepted by the list endpoint.
const (
	SearchAll     = "all"
	SearchTitle   = "title"
	SearchContent = "content"
	SearchAuthor  = "author"
)

// PostQuery carries the list-page parameters in UI terms: Page is 1-based
// and translated at the transport boundary.
type PostQuery struct {
	Page       int
	Search     string
	SearchType string
}
