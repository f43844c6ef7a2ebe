package schema

// FriendshipTable represents the 'friendship' edge table.
// Edges are directed: (user_id → friend_id).
type FriendshipTable struct {
	Table    string
	UserID   string
	FriendID string
	Active   string
}

// Friendship is the schema definition for friendship
var Friendship = FriendshipTable{
	Table:    "friendship",
	UserID:   "user_id",
	FriendID: "friend_id",
	Active:   "active",
}
