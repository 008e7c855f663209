package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

//*******************************************
// utility methods
//*******************************************

func _GetType(typ string) RoadType {
	switch typ {
	case "motorway":
		return MOTORWAY
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk":
		return TRUNK
	case "trunk_link":
		return TRUNK_LINK
	case "primary":
		return PRIMARY
	case "primary_link":
		return PRIMARY_LINK
	case "secondary":
		return SECONDARY
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary":
		return TERTIARY
	case "tertiary_link":
		return TERTIARY_LINK
	case "residential":
		return RESIDENTIAL
	case "living_street":
		return LIVING_STREET
	case "unclassified":
		return UNCLASSIFIED
	case "road":
		return ROAD
	case "track":
		return TRACK
	}
	return 0
}

func _GetTravelSpeed(streettype RoadType, maxspeed string, tracktype string, surface string) int32 {
	var speed int32

	// check if maxspeed is set
	if maxspeed != "" {
		if maxspeed == "walk" {
			speed = 10
		} else if maxspeed == "none" {
			speed = 110
		} else {
			t, err := strconv.Atoi(strings.TrimSuffix(maxspeed, " km/h"))
			if err != nil {
				speed = 20
			} else {
				speed = int32(t)
			}
		}
		speed = int32(0.9 * float32(speed))
	}

	// set defaults
	if maxspeed == "" {
		switch streettype {
		case MOTORWAY:
			speed = 100
		case TRUNK:
			speed = 85
		case MOTORWAY_LINK, TRUNK_LINK:
			speed = 60
		case PRIMARY:
			speed = 65
		case SECONDARY:
			speed = 60
		case TERTIARY:
			speed = 50
		case PRIMARY_LINK, SECONDARY_LINK:
			speed = 50
		case TERTIARY_LINK:
			speed = 40
		case UNCLASSIFIED, RESIDENTIAL:
			speed = 30
		case LIVING_STREET:
			speed = 10
		case ROAD:
			speed = 20
		case TRACK:
			switch tracktype {
			case "grade1":
				speed = 40
			case "grade2":
				speed = 30
			case "grade3":
				speed = 20
			case "grade5":
				speed = 10
			default:
				speed = 15
			}
		default:
			speed = 20
		}
	}

	// cap by surface
	switch surface {
	case "cement", "compacted":
		speed = min(speed, 80)
	case "fine_gravel":
		speed = min(speed, 60)
	case "paving_stones", "metal", "bricks":
		speed = min(speed, 40)
	case "grass", "wood", "sett", "grass_paver", "gravel", "unpaved", "ground", "dirt", "pebblestone", "tartan":
		speed = min(speed, 30)
	case "cobblestone", "clay":
		speed = min(speed, 20)
	case "earth", "stone", "rocky", "sand":
		speed = min(speed, 15)
	case "mud":
		speed = min(speed, 10)
	}

	if speed <= 0 {
		speed = 10
	}
	return speed
}

// Travel time in whole seconds, at least one.
func _TravelTime(length_m float64, speed_kmh int32) int32 {
	seconds := math.Ceil(length_m * 3.6 / float64(speed_kmh))
	return max(int32(seconds), 1)
}

// Parses gtfs times like "08:15:00", hours may exceed 24.
func _ParseGTFSTime(value string) (int32, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid gtfs time %q", value)
	}
	seconds := int32(0)
	for _, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid gtfs time %q", value)
		}
		seconds = seconds*60 + int32(v)
	}
	return seconds, nil
}
