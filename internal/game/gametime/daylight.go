package gametime

// Daylight is a named band of the game day used for display styling.
type Daylight string

const (
	Dawn  Daylight = "dawn"
	Day   Daylight = "day"
	Dusk  Daylight = "dusk"
	Night Daylight = "night"
)

// Daylight returns the band for t's hour.
//
// Postcondition: 05-07 dawn, 08-17 day, 18-20 dusk, otherwise night.
func (t GameTime) Daylight() Daylight {
	switch h := t.Hour; {
	case h >= 5 && h < 8:
		return Dawn
	case h >= 8 && h < 18:
		return Day
	case h >= 18 && h < 21:
		return Dusk
	default:
		return Night
	}
}
