package validator

import (
	"fmt"
	"strings"
)

// Policy selects how a sequence of validators is combined.
type Policy int

const (
	PolicyHarvestAll Policy = iota
	PolicyFailFast
)

func (p Policy) String() string {
	switch p {
	case PolicyFailFast:
		return "fail-fast"
	case PolicyHarvestAll:
		return "harvest-all"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case PolicyFailFast, PolicyHarvestAll:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("validator: unknown policy %d", int(p))
	}
}

// UnmarshalText accepts "fail-fast" and "harvest-all", case-insensitive.
func (p *Policy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "fail-fast", "failfast":
		*p = PolicyFailFast
	case "harvest-all", "harvestall":
		*p = PolicyHarvestAll
	default:
		return fmt.Errorf("validator: unknown policy %q", string(text))
	}
	return nil
}

// Aggregate combines validators under p. Under PolicyFailFast the result
// holds at most one error.
func Aggregate[T any, E error](p Policy, validators ...Validator[T, E]) Check[T, E] {
	if p == PolicyFailFast {
		return FailFast(validators...).Check()
	}
	return HarvestAll(validators...)
}

// AggregateChecks is Aggregate for checks.
func AggregateChecks[T any, E error](p Policy, checks ...Check[T, E]) Check[T, E] {
	if p == PolicyFailFast {
		return FailFastChecks(checks...)
	}
	return HarvestAllChecks(checks...)
}
