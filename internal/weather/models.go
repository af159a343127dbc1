package weather

import "errors"

// ErrShapeMismatch reports a successfully fetched document that lacks the
// fields this system expects to extract.
var ErrShapeMismatch = errors.New("unexpected response structure")

// Reading is the raw current-weather document as returned by the API. It is
// archived unchanged apart from an injected "timestamp" field; Extract is
// the only place that looks inside it.
type Reading map[string]any

// ExtractedFields are the display values pulled out of a Reading.
type ExtractedFields struct {
	Temp        float64
	FeelsLike   float64
	Humidity    float64
	Description string
}

// Extract performs the structural check on a raw document. It requires a
// "main" object carrying numeric temp/feels_like/humidity and a non-empty
// "weather" array whose first entry has a description string; anything else
// is a shape mismatch.
func (r Reading) Extract() (ExtractedFields, error) {
	main, ok := r["main"].(map[string]any)
	if !ok {
		return ExtractedFields{}, ErrShapeMismatch
	}

	temp, ok := main["temp"].(float64)
	if !ok {
		return ExtractedFields{}, ErrShapeMismatch
	}
	feelsLike, ok := main["feels_like"].(float64)
	if !ok {
		return ExtractedFields{}, ErrShapeMismatch
	}
	humidity, ok := main["humidity"].(float64)
	if !ok {
		return ExtractedFields{}, ErrShapeMismatch
	}

	conditions, ok := r["weather"].([]any)
	if !ok || len(conditions) == 0 {
		return ExtractedFields{}, ErrShapeMismatch
	}
	first, ok := conditions[0].(map[string]any)
	if !ok {
		return ExtractedFields{}, ErrShapeMismatch
	}
	description, ok := first["description"].(string)
	if !ok {
		return ExtractedFields{}, ErrShapeMismatch
	}

	return ExtractedFields{
		Temp:        temp,
		FeelsLike:   feelsLike,
		Humidity:    humidity,
		Description: description,
	}, nil
}
