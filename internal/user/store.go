package user

import "context"

// Repository defines the data access contract for user profiles.
type Repository interface {
	ListUsers(context context.Context) ([]*User, error)
	GetUserByID(context context.Context, id int64) (*User, error)
	CreateUser(context context.Context, user *User) error
	UpdateUser(context context.Context, user *User) error
	UserExists(context context.Context, id int64) (bool, error)
}

// FriendshipRepository maintains the directed friendship graph.
//
// Edges are one-way: AddFriend(a, b) makes b a friend of a without the
// reverse. DeleteFriend on a missing edge is a no-op.
type FriendshipRepository interface {
	AddFriend(context context.Context, userID, friendID int64) error
	DeleteFriend(context context.Context, userID, friendID int64) error
	ListFriends(context context.Context, userID int64) ([]*User, error)
	ListCommonFriends(context context.Context, userID, otherID int64) ([]*User, error)
}
