package sentiment

import "strings"

// Category is the visual bucket an outcome label falls into.
type Category int

const (
	Other Category = iota
	Positive
	Negative
)

func (c Category) String() string {
	switch c {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "other"
	}
}

// Outcome is a classified label. Label keeps the server's raw string.
type Outcome struct {
	Category Category
	Label    string
}

// Classify maps a label to its category, ignoring case.
// Anything that is not positive or negative stays Other with the raw label.
func Classify(label string) Outcome {
	switch strings.ToLower(label) {
	case "positive":
		return Outcome{Category: Positive, Label: label}
	case "negative":
		return Outcome{Category: Negative, Label: label}
	default:
		return Outcome{Category: Other, Label: label}
	}
}

// Display is the title shown for the outcome.
func (o Outcome) Display() string {
	switch o.Category {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return o.Label
	}
}
