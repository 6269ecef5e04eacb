package gallery

import "encoding/json"

// MatureRating enumerates content maturity levels, ordered from least to
// most mature by convention. The wire strings are part of the external
// contract.
type MatureRating string

const (
	MatureRatingPG   MatureRating = "pg"
	MatureRatingPG13 MatureRating = "pg-13"
	MatureRatingR    MatureRating = "r"
	MatureRatingX    MatureRating = "x"
	MatureRatingXXX  MatureRating = "xxx"
)

// MatureRatings lists every member from least to most mature.
func MatureRatings() []MatureRating {
	return []MatureRating{MatureRatingPG, MatureRatingPG13, MatureRatingR, MatureRatingX, MatureRatingXXX}
}

// Valid reports whether the rating belongs to the closed enumeration.
func (m MatureRating) Valid() bool {
	switch m {
	case MatureRatingPG, MatureRatingPG13, MatureRatingR, MatureRatingX, MatureRatingXXX:
		return true
	}
	return false
}

func (m MatureRating) String() string {
	return string(m)
}

// ParseMatureRating converts a wire string into a MatureRating.
func ParseMatureRating(s string) (MatureRating, error) {
	m := MatureRating(s)
	if !m.Valid() {
		return "", ErrUnknownMatureRating
	}
	return m, nil
}

// UnmarshalJSON decodes and validates the wire representation.
func (m *MatureRating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseMatureRating(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
