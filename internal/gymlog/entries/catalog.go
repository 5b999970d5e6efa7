package entries

type Category string

const (
	CategoryPush Category = "Push"
	CategoryPull Category = "Pull"
	CategoryLegs Category = "Legs"
)

// Categories in display order.
var Categories = []Category{CategoryPush, CategoryPull, CategoryLegs}

var catalog = map[Category][]string{
	CategoryPush: {
		"Barbell Bench Press",
		"Overhead Press (OHP)",
		"Incline Bench Press",
		"Decline Bench Press",
	},
	CategoryPull: {
		"Bent-Over Row",
		"Pendlay Row",
		"Barbell Curl",
		"Barbell Shrug",
		"Power Clean",
		"Power Snatch",
		"Romanian Deadlift",
		"Conventional Deadlift",
	},
	CategoryLegs: {
		"Back Squat",
		"Front Squat",
		"Overhead Squat",
		"Barbell Lunge",
		"Barbell Hip Thrust",
		"Standing Calf Raise",
	},
}

// Exercises returns the built-in barbell exercises of a category.
func Exercises(category Category) []string {
	list := catalog[category]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// CategoryOf returns the category of a built-in exercise, or "" for
// activities and exercises not in the catalog.
func CategoryOf(exercise string) Category {
	for _, c := range Categories {
		for _, ex := range catalog[c] {
			if ex == exercise {
				return c
			}
		}
	}
	return ""
}
