// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// PrimaryAdminID is the account that can never be deleted.
const PrimaryAdminID uint = 1

// User is an account of the marketplace.
type User struct {
	ID               uint      // Database identifier.
	Username         string    // Unique handle, 3..80 chars of [a-zA-Z0-9_-].
	Email            string    // Unique login identifier.
	PasswordHash     string    // bcrypt hash, never serialized.
	Role             Role      // RoleUser or RoleAdmin.
	ProfilePicture   string    // Public path of the uploaded picture, empty when unset.
	OwnedCourses     []uint    // Cache of the purchase ledger, in grant order, no duplicates.
	FavouriteCourses []uint    // Course ids the user bookmarked.
	SavedBlogs       []uint    // Blog ids the user bookmarked.
	CreatedAt        time.Time // Timestamp of when this account was created.
	UpdatedAt        time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// OwnsCourse reports whether courseID is in the owned-course cache.
func (u *User) OwnsCourse(courseID uint) bool {
	return slices.Contains(u.OwnedCourses, courseID)
}

// GrantCourse appends courseID to the owned-course cache. It reports false
// when the course was already owned.
func (u *User) GrantCourse(courseID uint) bool {
	if u.OwnsCourse(courseID) {
		return false
	}
	u.OwnedCourses = append(u.OwnedCourses, courseID)

	return true
}

// HasFavourite reports whether courseID is in the favourites list.
func (u *User) HasFavourite(courseID uint) bool {
	return slices.Contains(u.FavouriteCourses, courseID)
}

// HasSavedBlog reports whether blogID is in the saved-blogs list.
func (u *User) HasSavedBlog(blogID uint) bool {
	return slices.Contains(u.SavedBlogs, blogID)
}

// UserSnapshot is the minimal public view of a user embedded in invoices.
type UserSnapshot struct {
	ID       uint
	Username string
	Email    string
}

// Snapshot returns the credential-free view of the user.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{ID: u.ID, Username: u.Username, Email: u.Email}
}

// RemoveID returns ids without id, preserving order.
func RemoveID(ids []uint, id uint) []uint {
	return slices.DeleteFunc(slices.Clone(ids), func(v uint) bool { return v == id })
}
