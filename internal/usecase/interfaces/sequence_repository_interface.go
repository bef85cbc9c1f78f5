package interfaces

import "context"

// ISequenceRepository hands out sequential order numbers.
//
// Numbers are monotonically increasing and never reused; the DynamoDB
// implementation uses an atomic counter so concurrent creates cannot collide.

type ISequenceRepository interface {
	NextOrderNumber(ctx context.Context) (int, error)
}
