package dateadapter

// Formats maps the abstract format roles a date-picker host needs onto
// concrete token patterns understood by Adapter.Format and Adapter.Parse.
type Formats struct {
	Parse   ParseFormats
	Display DisplayFormats
}

// ParseFormats names the pattern used when interpreting typed user input.
type ParseFormats struct {
	DateInput string
}

// DisplayFormats names the patterns used when rendering values back to the
// user, including the accessible label variants.
type DisplayFormats struct {
	DateInput          string
	MonthYearLabel     string
	DateA11yLabel      string
	MonthYearA11yLabel string
}

// DefaultFormats is the stock format table a host can consume as-is.
var DefaultFormats = Formats{
	Parse: ParseFormats{
		DateInput: "MM/DD/YYYY",
	},
	Display: DisplayFormats{
		DateInput:          "MM/DD/YYYY",
		MonthYearLabel:     "MMM YYYY",
		DateA11yLabel:      "LL",
		MonthYearA11yLabel: "MMMM YYYY",
	},
}
