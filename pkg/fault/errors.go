package fault

import (
	"strings"

	"github.com/samber/lo"
)

// Errors is an ordered collection of faults, as produced by harvest-all
// validation. Order is the order in which failures were observed.
type Errors []Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "no faults"
	}
	return strings.Join(lo.Map(es, func(e Error, _ int) string { return e.Error() }), "; ")
}

// Unwrap exposes every fault to errors.Is and errors.As.
func (es Errors) Unwrap() []error {
	return lo.Map(es, func(e Error, _ int) error { return e })
}

func (es Errors) Has(kind Kind) bool {
	return lo.ContainsBy(es, func(e Error) bool { return e.Kind == kind })
}

func (es Errors) ByField(field string) Errors {
	return lo.Filter(es, func(e Error, _ int) bool { return e.Field == field })
}

// Fields lists distinct non-empty field names in first-seen order.
func (es Errors) Fields() []string {
	fields := lo.FilterMap(es, func(e Error, _ int) (string, bool) { return e.Field, e.Field != "" })
	return lo.Uniq(fields)
}

// Kinds lists kinds in order, one entry per fault.
func (es Errors) Kinds() []Kind {
	return lo.Map(es, func(e Error, _ int) Kind { return e.Kind })
}
