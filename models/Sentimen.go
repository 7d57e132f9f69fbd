package models

import (
	"errors"
	"fmt"
)

// Sentimen is the sentiment class of a post
type Sentimen string

const (
	Negatif Sentimen = "Negatif"
	Netral  Sentimen = "Netral"
	Positif Sentimen = "Positif"

	// All is the filter value selecting every class. It never labels a post.
	All Sentimen = "All"
)

var ErrInvalidSentimen = errors.New("Invalid sentiment label")

// Labels lists the classes in the order they are stacked on charts
var Labels = []Sentimen{Positif, Netral, Negatif}

var sentimenColors = map[Sentimen]string{
	Negatif: "#FF5959",
	Netral:  "#FACF5A",
	Positif: "#4F9DA6",
}

// classLabels maps the classifier's numeric classes to labels
var classLabels = map[int]Sentimen{
	-1: Negatif,
	0:  Netral,
	1:  Positif,
}

// Color returns the chart color of the class, black for unknown labels
func (s Sentimen) Color() string {
	if c, ok := sentimenColors[s]; ok {
		return c
	}
	return "#000000"
}

// IsLabel is true for the three classes
func (s Sentimen) IsLabel() bool {
	_, ok := sentimenColors[s]
	return ok
}

// Palette returns the class colors in Labels order
func Palette() []string {
	p := make([]string, 0, len(Labels))
	for _, s := range Labels {
		p = append(p, s.Color())
	}
	return p
}

// ParseSentimen validates a filter value. "All" is accepted.
func ParseSentimen(s string) (Sentimen, error) {
	v := Sentimen(s)
	if v == All || v.IsLabel() {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSentimen, s)
}

// SentimenFromClass maps -1, 0 and 1 to Negatif, Netral and Positif
func SentimenFromClass(class int) (Sentimen, error) {
	if s, ok := classLabels[class]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: class %d", ErrInvalidSentimen, class)
}

// LabelsFor expands a filter into the classes it selects
func LabelsFor(filter Sentimen) []Sentimen {
	if filter == All {
		return Labels
	}
	return []Sentimen{filter}
}
