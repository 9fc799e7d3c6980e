package scrape

import "fmt"

// ParseError reports cell or header text that could not be reduced to the
// numbers it is supposed to carry.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// UnitError reports a tenure whose unit could not be confirmed to be months.
// Tenures quoted in weeks, years or days must never be silently read as months.
type UnitError struct {
	Cell   string
	Header string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("no month indicator in cell %q or header %q", e.Cell, e.Header)
}

// NotFoundError reports that no table with the expected class exists in the
// fetched markup.
type NotFoundError struct {
	TableClass string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no table with class %q found", e.TableClass)
}
