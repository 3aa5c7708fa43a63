package cellrange

import "encoding/json"

// rangeJSON has Range's fields and tags but none of its methods.
type rangeJSON Range

// MarshalJSON writes r with Unbounded ends clamped to the sheet limits, so
// whole-column and whole-row ranges serialize as ordinary cell bounds.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeJSON(r.Clamp(MaxRows, MaxCols)))
}

// UnmarshalJSON reads bounds written by MarshalJSON. Ends at the sheet edge
// become Unbounded again.
func (r *Range) UnmarshalJSON(data []byte) error {
	var v rangeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = toSheetEdge(Range(v))
	return nil
}

// toSheetEdge treats an end bound on the last row or column of the sheet as
// Unbounded: both cover every remaining cell of the axis.
func toSheetEdge(r Range) Range {
	if r.R2 == MaxRows {
		r.R2 = Unbounded
	}
	if r.C2 == MaxCols {
		r.C2 = Unbounded
	}
	return r
}
