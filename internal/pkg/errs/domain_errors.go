package errs

// Domain sentinel errors shared by the core packages and the use case layer.
var (
	// Structural errors: bad input or bad configuration, always reported to the caller
	ErrInvalidInterval      = New("invalid interval: end must be after start")
	ErrUnknownUnit          = New("unknown unit")
	ErrAmbiguousDefaultRule = New("ambiguous default pricing rule")

	// Advisory: pricing degrades to free instead of failing
	ErrMissingRate = New("no rate configured")

	// Resource errors
	ErrResourceNotFound          = New("resource not found")
	ErrWholeUnitBookingForbidden = New("unit cannot be booked as a whole")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")
	ErrReservationConflict = New("reservation conflict")
	ErrInvalidTransition   = New("invalid status transition")
	ErrGroupNotFound       = New("reservation group not found")

	// Access errors
	ErrForbidden = New("operation not permitted for this user")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
