package databases

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Storage errors shared by every driver. Handlers map them to HTTP statuses.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrInvalidReference = errors.New("invalid reference")
)

// translateError converts mongo driver errors into the storage errors above
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	}
	return err
}
