package hedge

import "math"

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkOdds(index int, o float64) *ValidationError {
	switch {
	case math.IsNaN(o):
		return invalid("odds", index, "must be a number")
	case math.IsInf(o, 0):
		return invalid("odds", index, "must be finite, got %v", o)
	case o <= 0:
		return invalid("odds", index, "must be positive, got %v", o)
	}
	return nil
}

func checkTotal(total float64) *ValidationError {
	if !finite(total) {
		return invalid("total_amount", -1, "must be finite, got %v", total)
	}
	return nil
}

func checkRange(index int, r Range) *ValidationError {
	if !finite(r.Start) || !finite(r.End) {
		return invalid("ranges", index, "bounds must be finite, got [%v, %v]", r.Start, r.End)
	}
	if r.Start > r.End {
		return invalid("ranges", index, "start %v is after end %v", r.Start, r.End)
	}
	return nil
}

// Validate reports every problem with in at once. An empty range list is
// valid: it allocates nothing and returns nothing.
func (in Input) Validate() error {
	var errs ValidationErrors
	for i, r := range in.Ranges {
		errs.Add(checkRange(i, r))
		errs.Add(checkOdds(i, r.Odds))
	}
	errs.Add(checkTotal(in.TotalAmount))
	if !finite(in.WinningNumber) {
		errs.Add(invalid("winning_number", -1, "must be finite, got %v", in.WinningNumber))
	}
	return errs.Err()
}
