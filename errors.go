package dateadapter

import "errors"

// ErrInvalidArgument indicates a component passed to CreateDate is outside
// its accepted range.
var ErrInvalidArgument = errors.New("dateadapter: invalid argument")

// ErrInvalidDate indicates that year/month/day do not form a real calendar
// date, or that an invalid date value was handed to Format.
var ErrInvalidDate = errors.New("dateadapter: invalid date")

// ErrUnsupportedLocale indicates no locale data is available for the
// requested locale identifier.
var ErrUnsupportedLocale = errors.New("dateadapter: unsupported locale")
