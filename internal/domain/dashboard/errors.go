package dashboard

import "errors"

// ErrForbidden is returned when a caller asks for someone else's dashboard.
// It fails the whole batch before any data access.
var ErrForbidden = errors.New("Forbidden")
