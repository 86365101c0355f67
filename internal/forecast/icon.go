package forecast

// Icon is a symbolic icon token the display layer resolves to an asset.
type Icon string

const (
	IconDaySunny            Icon = "day-sunny"
	IconNightClear          Icon = "night-clear"
	IconDayCloudy           Icon = "day-cloudy"
	IconNightAltCloudy      Icon = "night-alt-cloudy"
	IconDayRain             Icon = "day-rain"
	IconNightAltRain        Icon = "night-alt-rain"
	IconDayShowers          Icon = "day-showers"
	IconNightAltShowers     Icon = "night-alt-showers"
	IconDayThunderstorm     Icon = "day-thunderstorm"
	IconNightAltThunderstorm Icon = "night-alt-thunderstorm"
	IconDaySnow             Icon = "day-snow"
	IconNightAltSnow        Icon = "night-alt-snow"
	IconDayFog              Icon = "day-fog"
	IconNightFog            Icon = "night-fog"
	IconDaySleet            Icon = "day-sleet"
	IconNightAltSleet       Icon = "night-alt-sleet"
	IconDayHaze             Icon = "day-haze"
	IconRain                Icon = "rain"
	IconRainWind            Icon = "rain-wind"
	IconRainMix             Icon = "rain-mix"
	IconSleet               Icon = "sleet"
	IconSnowWind            Icon = "snow-wind"
	IconThunderstorm        Icon = "thunderstorm"
	IconStormShowers        Icon = "storm-showers"
	IconSmoke               Icon = "smoke"
	IconDust                Icon = "dust"
	IconVolcano             Icon = "volcano"
	IconStrongWind          Icon = "strong-wind"
	IconTornado             Icon = "tornado"
)

func dayNight(isNight bool, day, night Icon) Icon {
	if isNight {
		return night
	}
	return day
}

// IconFor maps a condition code and day/night flag to an icon token.
// Unmapped codes fall back to the cloudy icons.
func IconFor(code int, isNight bool) Icon {
	switch code {
	// Thunderstorm
	case 200, 210:
		return dayNight(isNight, IconDayThunderstorm, IconNightAltThunderstorm)
	case 201, 211, 230, 231, 232:
		return IconThunderstorm
	case 202, 212, 221:
		return IconStormShowers

	// Drizzle
	case 300, 301, 302:
		return dayNight(isNight, IconDayShowers, IconNightAltShowers)
	case 310, 311, 312:
		return dayNight(isNight, IconDayRain, IconNightAltRain)
	case 313, 314, 321:
		return IconRainMix

	// Rain
	case 500:
		return dayNight(isNight, IconDayRain, IconNightAltRain)
	case 501, 521:
		return IconRain
	case 502, 503, 504, 522, 531:
		return IconRainWind
	case 511:
		return IconSleet
	case 520:
		return dayNight(isNight, IconDayShowers, IconNightAltShowers)

	// Snow
	case 600, 601, 602, 620, 621:
		return dayNight(isNight, IconDaySnow, IconNightAltSnow)
	case 611, 612, 613:
		return dayNight(isNight, IconDaySleet, IconNightAltSleet)
	case 615, 616:
		return IconRainMix
	case 622:
		return dayNight(isNight, IconSnowWind, IconNightAltSnow)

	// Atmosphere
	case 701, 741:
		return dayNight(isNight, IconDayFog, IconNightFog)
	case 711:
		return IconSmoke
	case 721:
		return IconDayHaze
	case 731, 751, 761:
		return IconDust
	case 762:
		return IconVolcano
	case 771:
		return IconStrongWind
	case 781:
		return IconTornado

	// Clear
	case 800:
		return dayNight(isNight, IconDaySunny, IconNightClear)

	// Clouds
	case 801, 802, 803, 804:
		return dayNight(isNight, IconDayCloudy, IconNightAltCloudy)

	default:
		return dayNight(isNight, IconDayCloudy, IconNightAltCloudy)
	}
}
