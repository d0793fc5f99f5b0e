package community

import "time"

// Post is an immutable snapshot of a trip at the moment it was shared.
// Later edits to the trip or its itinerary do not flow back into the post.
type Post struct {
	ID            string    `json:"id"`
	TripID        string    `json:"trip_id"`
	AuthorName    string    `json:"author_name"`
	AuthorEmail   string    `json:"author_email"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CoverImage    string    `json:"cover_image"`
	Destinations  []string  `json:"destinations"`
	Likes         int       `json:"likes"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
}
