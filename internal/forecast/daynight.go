package forecast

// IsNight reports whether the instant ts falls in the night bracketed
// by sunset and the following sunrise. Any instant at or after sunset
// is night, as is any instant before the given sunrise; callers must
// pass the sunrise on the correct side of sunset (same day before
// sunset, next day after), since one sunrise/sunset pair only brackets
// one night.
func IsNight(ts, sunset, sunrise int64) bool {
	return ts >= sunset || ts < sunrise
}
