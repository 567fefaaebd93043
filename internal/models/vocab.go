package models

import "tradelog/internal/metrics"

const (
	SideLong  = metrics.SideLong
	SideShort = metrics.SideShort
)

const (
	DayTypeGreen = "Green"
	DayTypeRed   = "Red"
	DayTypeFlat  = "Flat"
)

// Fixed vocabularies the forms choose from; served to the UI via the
// meta endpoint. Values match the stored strings exactly.
var (
	Moods      = []string{"😄", "🙂", "😐", "😕", "😫"}
	DayTypes   = []string{DayTypeGreen, DayTypeRed, DayTypeFlat}
	DayResults = []string{"No trade", "Positive (+)", "Negative (-)"}
	Sessions   = []string{"Asia", "London", "NY"}
	Markets    = []string{"Indices", "FX", "Crypto", "Commodities"}

	DefaultStrategies = []string{"Breakout", "Pullback", "Reversal", "Trend Following", "Range", "News"}
	DefaultTags       = []string{"London", "NY", "Asia", "High Vol", "Low Vol", "FOMO", "Plan", "Discipline"}
)

func ValidSide(side string) bool {
	return side == SideLong || side == SideShort
}
