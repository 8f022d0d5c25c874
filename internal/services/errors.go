package services

import "errors"

// Kind classifies a service error so the transport can choose a status code.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindNotFound
	KindConflict
)

// Error is a failure the caller can act on. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func validation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func notFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }

// Error variables
var (
	ErrEmptyBody        = validation("Request body must be a JSON object.")
	ErrMissingField     = validation("Missing required field.")
	ErrInvalidEmail     = validation("Email not valid")
	ErrInvalidFirst     = validation("First name must contain only ascii characters.")
	ErrInvalidLast      = validation("Last name must contain only ascii characters.")
	ErrInvalidRating    = validation("rating must be included between 1 and 5.")
	ErrInvalidAmenity   = validation("amenity_ids must be a list of strings.")
	ErrUnknownCountry   = validation("Country must exist in the ISO 3166 reference list.")
	ErrInvalidLatitude  = validation("latitude must be between -90 and 90.")
	ErrInvalidLongitude = validation("longitude must be between -180 and 180.")
	ErrNegativeValue    = validation("Counts and price must not be negative.")
	ErrNoUpdate         = conflict("No update provided")
	ErrInvalidLogin     = unauthorized("Wrong access input")
	ErrAdminOnly        = unauthorized("Admin only !")
	ErrNotOwner         = unauthorized("Not authorized")
	ErrUserNotFound     = notFound("User not found")
	ErrPlaceNotFound    = notFound("Place not found")
	ErrCityNotFound     = notFound("City not found")
	ErrCountryNotFound  = notFound("Country not found")
	ErrAmenityNotFound  = notFound("Amenity not found")
	ErrReviewNotFound   = notFound("Review not found")
	ErrReferenceGone    = notFound("Referenced resource not found")

	ErrUserAlreadyExists    = conflict("User already exists")
	ErrEmailInUse           = conflict("Email already in use")
	ErrAmenityAlreadyExists = conflict("Amenity already exists.")
	ErrCityAlreadyExists    = conflict("City already exists in this country.")
	ErrCountryAlreadyExists = conflict("Country already exists in database.")
	ErrCountryMismatch      = conflict("Country must exist in the ISO 3166 reference list.")
	ErrAlreadyHosting       = conflict("User already hosts a place.")
	ErrAmenityAlreadyLinked = conflict("Amenity already linked to this place.")
	ErrOwnPlaceReview       = conflict("You cannot review your own place.")
	ErrDuplicateReview      = conflict("You cannot review a place twice.")
)

// KindOf returns the kind of a service error, or 0 for internal errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
