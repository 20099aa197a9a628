// Package emotions validates the emotional components of a mood entry and
// summarizes them.
package emotions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"orbit/internal/scale"
)

// Emotion is one of the closed set of emotions a component may name.
type Emotion string

const (
	Joy      Emotion = "joy"
	Trust    Emotion = "trust"
	Fear     Emotion = "fear"
	Surprise Emotion = "surprise"
	Sad      Emotion = "sad"
	Disgust  Emotion = "disgust"
	Angry    Emotion = "angry"
	Anxiety  Emotion = "anxiety"
)

// Vocabulary lists every valid emotion.
var Vocabulary = []Emotion{Joy, Trust, Fear, Surprise, Sad, Disgust, Angry, Anxiety}

var vocabulary = func() map[Emotion]bool {
	m := make(map[Emotion]bool, len(Vocabulary))
	for _, e := range Vocabulary {
		m[e] = true
	}
	return m
}()

// IsValid reports whether name, in any case, is part of the vocabulary.
func IsValid(name string) bool {
	return vocabulary[Emotion(strings.ToLower(name))]
}

// Component is an emotion felt with a given intensity on the 1-10 scale.
type Component struct {
	Emotion   string  `json:"emotion"`
	Intensity float64 `json:"intensity"`
}

var (
	errNotArray   = errors.New("Components must be an array")
	errIncomplete = errors.New("Each component must have emotion and intensity")
)

// ValidateComponents checks a raw component list and returns it normalized,
// with lowercase emotions. It stops at the first violation.
func ValidateComponents(list gjson.Result) ([]Component, error) {
	if !list.IsArray() {
		return nil, errNotArray
	}

	items := list.Array()
	out := make([]Component, 0, len(items))
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		emotion, intensity := item.Get("emotion"), item.Get("intensity")
		if !item.IsObject() || !emotion.Exists() || !intensity.Exists() {
			return nil, errIncomplete
		}

		name := emotion.String()
		lower := strings.ToLower(name)
		if emotion.Type != gjson.String {
			return nil, fmt.Errorf("Invalid emotion: %s", emotion.Raw)
		}
		if !vocabulary[Emotion(lower)] {
			return nil, fmt.Errorf("Invalid emotion: %s", name)
		}

		level, ok := scale.Parse(intensity)
		if !ok {
			return nil, fmt.Errorf("Invalid intensity for %s: must be 1-10", name)
		}

		if seen[lower] {
			return nil, fmt.Errorf("Duplicate emotion: %s", name)
		}
		seen[lower] = true

		out = append(out, Component{Emotion: lower, Intensity: level})
	}

	return out, nil
}

// Stats summarizes the components of one mood entry.
type Stats struct {
	// Dominant is the emotion with the highest intensity; the first one wins ties.
	Dominant  *string            `json:"dominant"`
	Average   float64            `json:"average"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// CalculateStats computes the dominant emotion, mean intensity and per-emotion
// breakdown. An empty list yields no dominant emotion and a zero average.
func CalculateStats(components []Component) Stats {
	stats := Stats{Breakdown: make(map[string]float64, len(components))}
	if len(components) == 0 {
		return stats
	}

	maxIntensity, total := 0.0, 0.0
	for _, c := range components {
		total += c.Intensity
		stats.Breakdown[c.Emotion] = c.Intensity

		if c.Intensity > maxIntensity {
			maxIntensity = c.Intensity
			dominant := c.Emotion
			stats.Dominant = &dominant
		}
	}

	stats.Average = total / float64(len(components))
	return stats
}
