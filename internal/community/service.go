package community

import (
	"context"
	"encoding/json"

	"backend-wanderplan/internal/db"
	"backend-wanderplan/internal/stream"

	"github.com/google/uuid"
)

// feedChannel is the stream channel feed subscribers listen on.
const feedChannel = "community"

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

// Publish flips the trip public and creates a feed post snapshotting its
// current name, description, cover image and itinerary destinations.
//
// The trip update runs first; if the post insert then fails, the trip stays
// public with no post. That window is accepted rather than papered over with
// a rollback the record store cannot guarantee anyway.
func (s *Service) Publish(ctx context.Context, tripID, userID string) (Post, error) {
	var title, description, coverImage string
	row := s.db.QueryRow(ctx, `SELECT name, description, cover_image FROM trips WHERE id=$1`, tripID)
	if err := row.Scan(&title, &description, &coverImage); err != nil {
		return Post{}, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT city_name FROM itinerary_days WHERE trip_id=$1
		ORDER BY day_number
	`, tripID)
	if err != nil {
		return Post{}, err
	}
	defer rows.Close()
	var cityNames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return Post{}, err
		}
		cityNames = append(cityNames, name)
	}

	var fullName, email string
	row = s.db.QueryRow(ctx, `SELECT full_name, email FROM users WHERE id=$1`, userID)
	if err := row.Scan(&fullName, &email); err != nil {
		return Post{}, err
	}

	if _, err := s.db.Exec(ctx, `UPDATE trips SET is_public=TRUE WHERE id=$1`, tripID); err != nil {
		return Post{}, err
	}

	post := Post{
		ID:           uuid.NewString(),
		TripID:       tripID,
		AuthorName:   authorName(fullName),
		AuthorEmail:  email,
		Title:        title,
		Description:  description,
		CoverImage:   coverImage,
		Destinations: destinations(cityNames),
	}
	row = s.db.QueryRow(ctx, `
		INSERT INTO community_posts (id, trip_id, author_name, author_email, title, description, cover_image, destinations)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, post.ID, post.TripID, post.AuthorName, post.AuthorEmail, post.Title, post.Description, post.CoverImage, post.Destinations)
	if err := row.Scan(&post.CreatedAt); err != nil {
		return Post{}, err
	}

	s.broadcast("post_published", post)
	return post, nil
}

// ListPosts returns the feed sorted by likes ("trending", the default) or by
// creation date ("recent"), optionally filtered by a title/author search.
func (s *Service) ListPosts(ctx context.Context, tab, search string) ([]Post, error) {
	order := "likes DESC, created_at DESC"
	if tab == "recent" {
		order = "created_at DESC"
	}

	q := `
		SELECT id, trip_id, author_name, author_email, title, description, cover_image, destinations, likes, comments_count, created_at
		FROM community_posts
		ORDER BY ` + order
	var args []any
	if search != "" {
		q = `
		SELECT id, trip_id, author_name, author_email, title, description, cover_image, destinations, likes, comments_count, created_at
		FROM community_posts
		WHERE title ILIKE '%' || $1 || '%' OR author_name ILIKE '%' || $1 || '%'
		ORDER BY ` + order
		args = append(args, search)
	}

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.TripID, &p.AuthorName, &p.AuthorEmail, &p.Title, &p.Description, &p.CoverImage, &p.Destinations, &p.Likes, &p.CommentsCount, &p.CreatedAt); err != nil {
			return nil, err
		}
		if p.Destinations == nil {
			p.Destinations = []string{}
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Like bumps a post's like counter by one.
func (s *Service) Like(ctx context.Context, postID string) (Post, error) {
	var likes int
	if err := s.db.QueryRow(ctx, `SELECT likes FROM community_posts WHERE id=$1`, postID).Scan(&likes); err != nil {
		return Post{}, err
	}
	if _, err := s.db.Exec(ctx, `UPDATE community_posts SET likes=$2 WHERE id=$1`, postID, likes+1); err != nil {
		return Post{}, err
	}

	post := Post{ID: postID, Likes: likes + 1}
	s.broadcast("post_liked", post)
	return post, nil
}

func (s *Service) broadcast(event string, post Post) {
	if s.hub == nil {
		return
	}
	payload, _ := json.Marshal(map[string]any{"event": event, "post": post})
	s.hub.Broadcast(feedChannel, payload)
}

// destinations de-duplicates city names preserving first-seen order and
// dropping empties (days without a city assigned).
func destinations(cityNames []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, name := range cityNames {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func authorName(fullName string) string {
	if fullName == "" {
		return "Traveler"
	}
	return fullName
}
