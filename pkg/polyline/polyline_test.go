package polyline

import (
	"math"
	"testing"
)

func TestDecode_ValidPolyline(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		expected []Coordinate
	}{
		{
			name:    "Google example",
			encoded: "_p~iF~ps|U_ulLnnqC_mqNvxq`@",
			expected: []Coordinate{
				{Lat: 38.5, Lon: -120.2},
				{Lat: 40.7, Lon: -120.95},
				{Lat: 43.252, Lon: -126.453},
			},
		},
		{
			name:    "St Chads View to Leeds Station",
			encoded: "seogI~jtHzjDccF",
			expected: []Coordinate{
				{Lat: 53.8225, Lon: -1.584},
				{Lat: 53.795, Lon: -1.5475},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Decode(tt.encoded)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d coordinates, got %d", len(tt.expected), len(result))
			}

			for i, coord := range result {
				if !coordsEqual(coord, tt.expected[i], 0.00001) {
					t.Errorf("coordinate %d: expected %+v, got %+v", i, tt.expected[i], coord)
				}
			}
		})
	}
}

func TestDecode_EmptyString(t *testing.T) {
	if result := Decode(""); result != nil {
		t.Errorf("expected nil for empty string, got %v", result)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	coords := []Coordinate{
		{Lat: 53.795, Lon: -1.5475},
		{Lat: 52.7787, Lon: -1.1963},
		{Lat: 52.832, Lon: -1.177},
	}

	decoded := Decode(Encode(coords))
	if len(decoded) != len(coords) {
		t.Fatalf("expected %d coordinates, got %d", len(coords), len(decoded))
	}
	for i, coord := range decoded {
		if !coordsEqual(coord, coords[i], 0.00001) {
			t.Errorf("coordinate %d: expected %+v, got %+v", i, coords[i], coord)
		}
	}
}

func TestEncode_KnownValue(t *testing.T) {
	got := Encode([]Coordinate{{Lat: 53.8225, Lon: -1.584}, {Lat: 53.795, Lon: -1.5475}})
	if got != "seogI~jtHzjDccF" {
		t.Errorf("Encode() = %q, want %q", got, "seogI~jtHzjDccF")
	}
}

func TestEncode_EmptyCoordinates(t *testing.T) {
	if result := Encode(nil); result != "" {
		t.Errorf("expected empty string for nil coordinates, got %q", result)
	}
}

func TestJoin_SkipsSharedEndpoints(t *testing.T) {
	// Home -> Headingley -> Leeds, sharing the Headingley point.
	got := Join("seogI~jtHb[r`A", "oingIrlvHvnCwdH")
	if len(got) != 3 {
		t.Fatalf("expected 3 coordinates, got %d: %v", len(got), got)
	}
	if !coordsEqual(got[1], Coordinate{Lat: 53.818, Lon: -1.5945}, 0.00001) {
		t.Errorf("unexpected junction point %+v", got[1])
	}
}

func TestJoin_Empty(t *testing.T) {
	if got := Join("", ""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestBounds(t *testing.T) {
	box, ok := Bounds(Decode("_~jgIzpmHvjhEc~aA"))
	if !ok {
		t.Fatal("expected bounds")
	}

	want := Box{MinLat: 52.7698, MinLon: -1.5491, MaxLat: 53.8008, MaxLon: -1.2062}
	if math.Abs(box.MinLat-want.MinLat) > 1e-9 || math.Abs(box.MaxLat-want.MaxLat) > 1e-9 ||
		math.Abs(box.MinLon-want.MinLon) > 1e-9 || math.Abs(box.MaxLon-want.MaxLon) > 1e-9 {
		t.Errorf("Bounds() = %+v, want %+v", box, want)
	}

	if _, ok := Bounds(nil); ok {
		t.Error("expected no bounds for empty input")
	}
}

// coordsEqual checks if two coordinates are equal within a tolerance.
func coordsEqual(a, b Coordinate, tolerance float64) bool {
	return math.Abs(a.Lat-b.Lat) <= tolerance && math.Abs(a.Lon-b.Lon) <= tolerance
}

func BenchmarkDecode(b *testing.B) {
	encoded := "wyigIzfmHzneE_rcA"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Decode(encoded)
	}
}
