package nav

import (
	"errors"
	"fmt"

	"couchpotato/internal/catalog"
)

// ErrRatingRange is returned by Rating.Set for values outside 1..5.
var ErrRatingRange = errors.New("rating out of range")

// Rating is the star control on a detail screen. It starts from the item's
// stored rating and lives only as long as the screen that owns it: the item
// is never updated, and a remounted screen starts over.
type Rating struct {
	initial int
	value   int
}

// NewRating seeds the control from the item.
func NewRating(it catalog.Item) Rating {
	v := it.Rating
	if v < 0 {
		v = 0
	}
	if v > catalog.MaxRating {
		v = catalog.MaxRating
	}
	return Rating{initial: v, value: v}
}

// Set overwrites the value with n in 1..5.
func (r *Rating) Set(n int) error {
	if n < 1 || n > catalog.MaxRating {
		return fmt.Errorf("%w: %d", ErrRatingRange, n)
	}
	r.value = n
	return nil
}

// Step moves the value by delta, clamped to 1..5. A decrease never raises
// the value, so an unrated item stays at 0.
func (r *Rating) Step(delta int) {
	n := r.value + delta
	if n < 1 {
		n = min(1, r.value)
	}
	if n > catalog.MaxRating {
		n = catalog.MaxRating
	}
	r.value = n
}

// Value is the current star count.
func (r Rating) Value() int { return r.value }

// Initial is the rating the control started from.
func (r Rating) Initial() int { return r.initial }

// Changed reports whether the value differs from the item's rating.
func (r Rating) Changed() bool { return r.value != r.initial }
