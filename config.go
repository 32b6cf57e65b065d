package dateadapter

// DefaultLocale is the locale used when no WithLocale option is supplied.
const DefaultLocale = "en-US"

// config captures adapter construction settings.
type config struct {
	locale string
	useUTC bool
}

// Option mutates config during construction.
type Option func(*config) error

// WithLocale sets the adapter's initial locale.
func WithLocale(locale string) Option {
	return func(c *config) error {
		c.locale = locale
		return nil
	}
}

// WithUTC anchors every constructed date value to UTC rather than local
// civil time.
func WithUTC(useUTC bool) Option {
	return func(c *config) error {
		c.useUTC = useUTC
		return nil
	}
}
