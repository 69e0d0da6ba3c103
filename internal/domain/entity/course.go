package entity

import (
	"errors"
	"strings"
	"time"
)

// Course is the aggregate document: catalog attributes plus owned content
// sections and reviews. Ratings is denormalized and must always equal the
// arithmetic mean of the attached review ratings.
type Course struct {
	ID             string          `bson:"_id,omitempty" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Description    string          `bson:"description" json:"description"`
	Price          float64         `bson:"price" json:"price"`
	EstimatedPrice float64         `bson:"estimated_price,omitempty" json:"estimated_price,omitempty"`
	Level          string          `bson:"level,omitempty" json:"level,omitempty"`
	Tags           []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	Thumbnail      *Avatar         `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Ratings        float64         `bson:"ratings" json:"ratings"`
	Purchased      int             `bson:"purchased" json:"purchased"`
	CourseData     []CourseContent `bson:"course_data" json:"course_data"`
	Reviews        []Review        `bson:"reviews" json:"reviews"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updated_at"`
}

// CourseContent is one ordered section of a course. VideoURL, Links,
// Suggestion and Questions are the heavy fields stripped from cached reads.
type CourseContent struct {
	ID          string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	VideoURL    string     `bson:"video_url,omitempty" json:"video_url,omitempty"`
	VideoLength int        `bson:"video_length,omitempty" json:"video_length,omitempty"`
	Links       []Link     `bson:"links,omitempty" json:"links,omitempty"`
	Suggestion  string     `bson:"suggestion,omitempty" json:"suggestion,omitempty"`
	Questions   []Question `bson:"questions" json:"questions"`
}

// Link is an external resource attached to a content section.
type Link struct {
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
}

// UserRef is the compact author snapshot embedded in sub-documents.
type UserRef struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	AvatarURL string `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}

// Question is a Q&A thread opened on a content section.
type Question struct {
	ID      string  `bson:"_id" json:"id"`
	Author  UserRef `bson:"author" json:"author"`
	Text    string  `bson:"text" json:"text"`
	Replies []Reply `bson:"replies" json:"replies"`
}

// Review is a rated comment attached to a course.
type Review struct {
	ID        string    `bson:"_id" json:"id"`
	Author    UserRef   `bson:"author" json:"author"`
	Rating    float64   `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	Replies   []Reply   `bson:"replies" json:"replies"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Reply is an answer to a question or a reply to a review. Timestamps are
// assigned at construction and never change afterwards.
type Reply struct {
	ID        string    `bson:"_id" json:"id"`
	Author    UserRef   `bson:"author" json:"author"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

var (
	ErrEmptyText     = errors.New("text must not be empty")
	ErrMissingAuthor = errors.New("author reference is required")
	ErrRatingRange   = errors.New("rating must be between 0 and 5")
)

// NewQuestion builds a validated question sub-document.
func NewQuestion(id string, author UserRef, text string) (Question, error) {
	if author.ID == "" {
		return Question{}, ErrMissingAuthor
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Question{}, ErrEmptyText
	}
	return Question{ID: id, Author: author, Text: text, Replies: []Reply{}}, nil
}

// NewReview builds a validated review sub-document.
func NewReview(id string, author UserRef, rating float64, comment string, now time.Time) (Review, error) {
	if author.ID == "" {
		return Review{}, ErrMissingAuthor
	}
	if rating < 0 || rating > 5 {
		return Review{}, ErrRatingRange
	}
	return Review{
		ID:        id,
		Author:    author,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		Replies:   []Reply{},
		CreatedAt: now,
	}, nil
}

// NewReply builds a validated reply sub-document with append-time timestamps.
func NewReply(id string, author UserRef, text string, now time.Time) (Reply, error) {
	if author.ID == "" {
		return Reply{}, ErrMissingAuthor
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyText
	}
	return Reply{ID: id, Author: author, Text: text, CreatedAt: now, UpdatedAt: now}, nil
}

// Content finds a content section by id.
func (c *Course) Content(contentID string) *CourseContent {
	for i := range c.CourseData {
		if c.CourseData[i].ID == contentID {
			return &c.CourseData[i]
		}
	}
	return nil
}

// QuestionByID finds a question within a content section.
func (cc *CourseContent) QuestionByID(questionID string) *Question {
	for i := range cc.Questions {
		if cc.Questions[i].ID == questionID {
			return &cc.Questions[i]
		}
	}
	return nil
}

// ReviewByID finds a review by id.
func (c *Course) ReviewByID(reviewID string) *Review {
	for i := range c.Reviews {
		if c.Reviews[i].ID == reviewID {
			return &c.Reviews[i]
		}
	}
	return nil
}

// RecomputeRatings sets Ratings to the mean over the full reviews list.
// Full recompute, not an incremental average.
func (c *Course) RecomputeRatings() {
	if len(c.Reviews) == 0 {
		c.Ratings = 0
		return
	}
	var sum float64
	for _, r := range c.Reviews {
		sum += r.Rating
	}
	c.Ratings = sum / float64(len(c.Reviews))
}

// Stripped returns a copy with the heavy per-section fields removed, the shape
// stored in the course caches and returned from unpurchased reads.
func (c *Course) Stripped() *Course {
	clean := *c
	clean.CourseData = make([]CourseContent, len(c.CourseData))
	for i, cc := range c.CourseData {
		cc.VideoURL = ""
		cc.Suggestion = ""
		cc.Questions = nil
		cc.Links = nil
		clean.CourseData[i] = cc
	}
	return &clean
}
