package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
)

// Coord is a [lon, lat] pair in degrees.
type Coord = orb.Point

// CoordArray is an ordered polyline.
type CoordArray = orb.LineString

const EARTH_RADIUS = 6371000.0

// Threshold in degrees below which a change of heading is not announced as a turn.
const TURN_THRESHOLD = 25.0

//*******************************************
// distance and bearing
//*******************************************

// Distance returns the great-circle distance between a and b in meters (haversine).
func Distance(a, b Coord) float64 {
	lon1, lat1 := a[0], a[1]
	lon2, lat2 := b[0], b[1]
	phi1 := _Radians(lat1)
	phi2 := _Radians(lat2)
	d_phi := _Radians(lat2 - lat1)
	d_lambda := _Radians(lon2 - lon1)
	x := math.Pow(math.Sin(d_phi/2), 2) + math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin(d_lambda/2), 2)
	return 2 * EARTH_RADIUS * math.Atan2(math.Sqrt(x), math.Sqrt(1-x))
}

// LineLength sums the pairwise distances along line.
func LineLength(line CoordArray) float64 {
	length := 0.0
	for i := 0; i < len(line)-1; i++ {
		length += Distance(line[i], line[i+1])
	}
	return length
}

// Bearing returns the initial compass bearing from a to b in [0, 360).
func Bearing(a, b Coord) float64 {
	lon1, lat1 := _Radians(a[0]), _Radians(a[1])
	lon2, lat2 := _Radians(b[0]), _Radians(b[1])
	d_lon := lon2 - lon1
	x := math.Sin(d_lon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(d_lon)
	brng := _Degrees(math.Atan2(x, y))
	brng = math.Mod(brng+360, 360)
	if brng >= 360 {
		brng = 0
	}
	return brng
}

// TurnAngle returns the signed heading change from b1 to b2 in (-180, 180].
// Positive values turn clockwise (right).
func TurnAngle(b1, b2 float64) float64 {
	return _FloorMod(b2-b1+540, 360) - 180
}

// ClassifyTurn decides whether moving from heading b1 to heading b2 is a turn.
func ClassifyTurn(b1, b2 float64) TurnDirection {
	diff := TurnAngle(b1, b2)
	if math.Abs(diff) < TURN_THRESHOLD {
		return STRAIGHT
	} else if diff > 0 {
		return RIGHT
	} else {
		return LEFT
	}
}

//*******************************************
// encoding
//*******************************************

// EncodePolyline encodes the concatenation of lines as a Google polyline.
// Shared endpoints of consecutive lines are emitted once.
func EncodePolyline(lines ...CoordArray) string {
	coords := make([][]float64, 0, 16)
	for _, line := range lines {
		for i, c := range line {
			if i == 0 && len(coords) > 0 {
				last := coords[len(coords)-1]
				if last[0] == c[1] && last[1] == c[0] {
					continue
				}
			}
			coords = append(coords, []float64{c[1], c[0]})
		}
	}
	return string(polyline.EncodeCoords(coords))
}

func _Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func _Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// modulo with the sign of the divisor
func _FloorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}
