package entries

// OtherActivity is the exercise name that marks a non-lift entry
// (cardio, a note, a plain body weight check-in...).
const OtherActivity = "Other Activity"

// DefaultActivityComment is stored when an activity is logged with a body weight only.
const DefaultActivityComment = "Body weight check-in"

// Entry is a single logged set of work or an activity note.
// Lift entries are never edited, only deleted; activities support in-place edits
// of comments, date and body weight.
type Entry struct {
	ID       int64   `json:"id"`
	Exercise string  `json:"exercise"`
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	RPE      float64 `json:"rpe"`
	// BodyWeight is nil when it was not recorded with this entry.
	BodyWeight *float64 `json:"bodyWeight"`
	Comments   string   `json:"comments"`
	Edited     bool     `json:"edited"`
}

func (e Entry) IsActivity() bool {
	return e.Exercise == OtherActivity
}

// Volume is weight x sets x reps.
func (e Entry) Volume() float64 {
	return e.Weight * float64(e.Sets) * float64(e.Reps)
}

func (e Entry) HasBodyWeight() bool {
	return e.BodyWeight != nil && *e.BodyWeight > 0
}

// Clone returns a copy that shares no memory with e.
func (e Entry) Clone() Entry {
	if e.BodyWeight != nil {
		e.BodyWeight = Float(*e.BodyWeight)
	}
	return e
}

// ActivityPatch replaces the editable fields of an activity entry.
type ActivityPatch struct {
	Comments   string
	Date       string
	BodyWeight *float64
}

func Float(f float64) *float64 {
	return &f
}
