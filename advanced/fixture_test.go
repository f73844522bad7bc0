package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into rings and point sets. This is not a
// full (or even correct) svg parser. A ring fixture holds exactly one polygon;
// a point fixture holds any number of circles, and only their centers matter.
// If anything goes wrong, it exits the test binary.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) *svgparser.Element {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return rootEl
}

// Load the single polygon of a fixture as an open ring, in document order.
func LoadRingFixture(name string) Ring {
	polygons := loadFixture(name).FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	ring := make(Ring, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		ring = append(ring, Point{X: parseCoord(name, coords[0]), Y: parseCoord(name, coords[1])})
	}
	return ring
}

// Load the centers of every circle in a fixture, in document order.
func LoadPointsFixture(name string) []Point {
	circles := loadFixture(name).FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		points = append(points, Point{
			X: parseCoord(name, circle.Attributes["cx"]),
			Y: parseCoord(name, circle.Attributes["cy"]),
		})
	}
	return points
}

func parseCoord(name, s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q in fixture %q: %v", s, name, err)
	}
	return v
}
