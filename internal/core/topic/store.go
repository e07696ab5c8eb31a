package topic

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListTopics(context context.Context) ([]*Topic, error)
}
