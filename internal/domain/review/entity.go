package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
	ErrEmptyComment   = errors.New("comment cannot be empty")
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(value string) (Comment, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(value) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: value}, nil
}

func (c Comment) String() string {
	return c.value
}

// Review is a renter's rating of a vehicle, tied to the completed
// reservation that makes it eligible.
type Review struct {
	id            uuid.UUID
	vehicleID     uuid.UUID
	renterID      uuid.UUID
	reservationID uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(vehicleID, renterID, reservationID uuid.UUID, rating int, comment string) (*Review, error) {
	ratingVO, err := NewRating(rating)
	if err != nil {
		return nil, err
	}
	commentVO, err := NewComment(comment)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:            uuid.New(),
		vehicleID:     vehicleID,
		renterID:      renterID,
		reservationID: reservationID,
		rating:        ratingVO,
		comment:       commentVO,
	}, nil
}

func ReconstructReview(
	id, vehicleID, renterID, reservationID uuid.UUID,
	rating Rating,
	comment Comment,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:            id,
		vehicleID:     vehicleID,
		renterID:      renterID,
		reservationID: reservationID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) VehicleID() uuid.UUID     { return r.vehicleID }
func (r *Review) RenterID() uuid.UUID      { return r.renterID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
