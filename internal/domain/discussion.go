package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Discussion represents a topic on a group's discussion board together with
// its comments in the order they were posted.
type Discussion struct {
	ID        uuid.UUID `json:"id"         validate:"required"`
	Topic     string    `json:"topic"      validate:"required"`
	Comments  []Comment `json:"comments"`
	GroupName string    `json:"group_name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDiscussion creates a new Discussion with no comments.
// Returns an error if validation fails.
func NewDiscussion(groupName, topic string) (*Discussion, error) {
	discussion := &Discussion{
		ID:        uuid.New(),
		Topic:     topic,
		Comments:  []Comment{},
		GroupName: groupName,
		CreatedAt: time.Now().UTC(),
	}

	if err := discussion.Validate(); err != nil {
		return nil, err
	}

	return discussion, nil
}

// Validate checks if the Discussion has valid data.
func (d *Discussion) Validate() error {
	return validateStruct(d)
}

// Comment is one post on a discussion board. Author holds the poster's
// username at the time of posting.
type Comment struct {
	AuthorID int       `json:"author_id"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	PostedAt time.Time `json:"posted_at"`
}

// AddComment appends a comment by author to the discussion.
// Blank comments are rejected with ErrEmptyContent.
func (d *Discussion) AddComment(author *User, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyContent
	}
	d.Comments = append(d.Comments, Comment{
		AuthorID: author.ID,
		Author:   author.Username,
		Text:     text,
		PostedAt: time.Now().UTC(),
	})
	return nil
}

// CommentTexts returns the text of every comment in posting order.
func (d *Discussion) CommentTexts() []string {
	texts := make([]string, len(d.Comments))
	for i, c := range d.Comments {
		texts[i] = c.Text
	}
	return texts
}

// Key returns the value the discussion is looked up by within its group.
func (d *Discussion) Key() string {
	return d.Topic
}

// Group returns the name of the group the discussion belongs to.
func (d *Discussion) Group() string {
	return d.GroupName
}
