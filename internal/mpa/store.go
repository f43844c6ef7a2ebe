package mpa

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListRatings(context context.Context) ([]*MPA, error)
	GetRatingByID(context context.Context, id int64) (*MPA, error)
}
