package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string         `bson:"_id,omitempty" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email" json:"email"`
	PasswordHash string         `bson:"password_hash" json:"-"`
	Avatar       *Avatar        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role         UserRole       `bson:"role" json:"role"`
	Courses      []CourseAccess `bson:"courses" json:"courses"`
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updated_at"`
}

// Avatar is a hosted image reference (public id for deletion, url for display).
type Avatar struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

// CourseAccess records that a user owns access to a course.
type CourseAccess struct {
	CourseID    string    `bson:"course_id" json:"course_id"`
	PurchasedAt time.Time `bson:"purchased_at" json:"purchased_at"`
}

// OwnsCourse reports whether the user has access to the given course.
func (u *User) OwnsCourse(courseID string) bool {
	for _, c := range u.Courses {
		if c.CourseID == courseID {
			return true
		}
	}
	return false
}

// Ref returns the compact author snapshot embedded in course sub-documents.
func (u *User) Ref() UserRef {
	ref := UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
	if u.Avatar != nil {
		ref.AvatarURL = u.Avatar.URL
	}
	return ref
}

// Sanitized returns a copy safe for caching and API responses. The password
// hash is stripped and must never travel past this point.
func (u *User) Sanitized() *User {
	clean := *u
	clean.PasswordHash = ""
	return &clean
}

// PendingUser is unpersisted signup data carried inside an activation token.
// Password is the plaintext submitted at signup; it is hashed at activation
// time, never stored.
type PendingUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}
