package features

// EncodedInput is what the encoded form collects
type EncodedInput struct {
	AvgScore      float64
	DaysSinceLast float64
	ActionCode    int
	ViolationCode float64
	Month         int
	Weekday       int
}

// RawInput is what the raw form collects
type RawInput struct {
	Borough       string
	Cuisine       string
	AvgScore      float64
	DaysSinceLast float64
	Action        string
}

// encodedOverrides lists the keys AssembleEncoded writes, in write order
var encodedOverrides = []string{KeyAvgScore, KeyDaysSinceLast, KeyAction, KeyViolationCode, KeyMonth, KeyWeekday}

// AssembleEncoded zero-fills the full encoded schema and overwrites the six user keys
// Every other column, geocoding and _na flags included, stays zero
func AssembleEncoded(in EncodedInput) *Vector {
	v := Zero(Encoded.Keys)
	v.Set(KeyAvgScore, Num(in.AvgScore))
	v.Set(KeyDaysSinceLast, Num(in.DaysSinceLast))
	v.Set(KeyAction, Num(float64(in.ActionCode)))
	v.Set(KeyViolationCode, Num(in.ViolationCode))
	v.Set(KeyMonth, Num(float64(in.Month)))
	v.Set(KeyWeekday, Num(float64(in.Weekday)))
	return v
}

// AssembleRaw builds exactly the five raw keys; strings pass through untouched
func AssembleRaw(in RawInput) *Vector {
	v := NewVector(len(rawKeys))
	v.Set(KeyBorough, Cat(in.Borough))
	v.Set(KeyCuisine, Cat(in.Cuisine))
	v.Set(KeyAvgScore, Num(in.AvgScore))
	v.Set(KeyDaysSinceLast, Num(in.DaysSinceLast))
	v.Set(KeyAction, Cat(in.Action))
	return v
}

// EncodedOverrides returns the keys AssembleEncoded sets from input
func EncodedOverrides() []string { return append([]string(nil), encodedOverrides...) }
