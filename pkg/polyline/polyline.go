// Package polyline provides encoding and decoding utilities for Google's polyline algorithm.
// The polyline algorithm is documented at: https://developers.google.com/maps/documentation/utilities/polylinealgorithm
package polyline

import (
	"math"
)

// Coordinate represents a geographic point with latitude and longitude.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Box is the bounding box of a set of coordinates.
type Box struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// Decode decodes a polyline-encoded string into a slice of coordinates.
// The polyline format uses precision of 5 decimal places.
func Decode(encoded string) []Coordinate {
	if encoded == "" {
		return nil
	}

	var coords []Coordinate
	index := 0
	lat := 0
	lon := 0

	for index < len(encoded) {
		latDelta, newIndex := decodeValue(encoded, index)
		index = newIndex
		lat += latDelta

		lonDelta, newIndex := decodeValue(encoded, index)
		index = newIndex
		lon += lonDelta

		coords = append(coords, Coordinate{
			Lat: float64(lat) / 1e5,
			Lon: float64(lon) / 1e5,
		})
	}

	return coords
}

// decodeValue decodes a single value from the polyline at the given index.
// Returns the decoded delta value and the new index position.
func decodeValue(encoded string, index int) (int, int) {
	shift := 0
	result := 0

	for index < len(encoded) {
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	// Two's complement for negative values
	if result&1 != 0 {
		return ^(result >> 1), index
	}
	return result >> 1, index
}

// Encode encodes a slice of coordinates into a polyline-encoded string.
func Encode(coords []Coordinate) string {
	if len(coords) == 0 {
		return ""
	}

	encoded := make([]byte, 0, len(coords)*4)
	prevLat := 0
	prevLon := 0

	for _, coord := range coords {
		lat := int(math.Round(coord.Lat * 1e5))
		lon := int(math.Round(coord.Lon * 1e5))

		encoded = encodeValue(encoded, lat-prevLat)
		encoded = encodeValue(encoded, lon-prevLon)

		prevLat = lat
		prevLon = lon
	}

	return string(encoded)
}

func encodeValue(buf []byte, value int) []byte {
	if value < 0 {
		value = ^(value << 1)
	} else {
		value <<= 1
	}

	for value >= 0x20 {
		buf = append(buf, byte((value&0x1f)|0x20)+63)
		value >>= 5
	}
	buf = append(buf, byte(value)+63)

	return buf
}

// Join decodes each path and concatenates them in order. A point equal to
// the last point of the previous path is not repeated.
func Join(encoded ...string) []Coordinate {
	var out []Coordinate
	for _, e := range encoded {
		for _, c := range Decode(e) {
			if len(out) > 0 && out[len(out)-1] == c {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

// Bounds returns the bounding box of coords. ok is false when coords is empty.
func Bounds(coords []Coordinate) (box Box, ok bool) {
	if len(coords) == 0 {
		return Box{}, false
	}

	box = Box{
		MinLat: coords[0].Lat,
		MinLon: coords[0].Lon,
		MaxLat: coords[0].Lat,
		MaxLon: coords[0].Lon,
	}
	for _, c := range coords[1:] {
		box.MinLat = math.Min(box.MinLat, c.Lat)
		box.MinLon = math.Min(box.MinLon, c.Lon)
		box.MaxLat = math.Max(box.MaxLat, c.Lat)
		box.MaxLon = math.Max(box.MaxLon, c.Lon)
	}
	return box, true
}
