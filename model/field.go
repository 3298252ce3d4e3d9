package model

// MaxFields is the largest number of fields a selection mask can address.
const MaxFields = 31

// Field is a named series of per-period amounts.
// Fields are immutable once loaded and shared read-only by all search workers.
type Field struct {
	Name   string
	Values []float64
}

// Total returns the plain sum of the field's values.
func (f Field) Total() float64 {
	var t float64
	for _, v := range f.Values {
		t += v
	}
	return t
}

// Dataset is an ordered list of fields read from one source.
type Dataset struct {
	Name   string
	Fields []Field
}

// Names returns the field names in dataset order.
func (d Dataset) Names() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// FullMask returns the mask with the low n bits set.
// n must be in [0, MaxFields].
func FullMask(n int) uint32 {
	return uint32(1)<<uint(n) - 1
}
