package progress

import (
	"fmt"
	"math"
)

type differenceClass int

const (
	// differenceGain is a gain above the weekly threshold
	differenceGain differenceClass = iota
	// differenceUp is a gain within the weekly threshold
	differenceUp
	// differenceDown is no change or a loss
	differenceDown
)

type trendClass int

const (
	// trendFalling is a sustained loss beyond the trend threshold
	trendFalling trendClass = iota
	trendFlatOrRising
)

type annotationKind int

const (
	annotationNone annotationKind = iota
	// annotationGreatProgress praises a sustained loss
	annotationGreatProgress
	// annotationRising is only shown if the trend is actually going up
	annotationRising
	// annotationDirection shows the trend with its direction arrow
	annotationDirection
)

func (k annotationKind) format(trend float64) string {
	magnitude := math.Abs(trend)
	switch k {
	case annotationGreatProgress:
		return fmt.Sprintf(" (Trend: ↓ %.1f lbs avg - Great progress!)", magnitude)
	case annotationRising:
		if trend > 0 {
			return fmt.Sprintf(" (Trend: ↑ %.1f lbs avg)", magnitude)
		}
		return ""
	case annotationDirection:
		arrow := "↑"
		if trend < 0 {
			arrow = "↓"
		}
		return fmt.Sprintf(" (Trend: %s %.1f lbs avg)", arrow, magnitude)
	default:
		return ""
	}
}

type outcome struct {
	polarity   Polarity
	annotation annotationKind
}

type decisionKey struct {
	goal       GoalMode
	difference differenceClass
	trend      trendClass
}

// decisionTable maps every (goal, difference, trend) combination past the
// significance gate to a verdict. Maintenance never gets here.
//
// Bulking: any gain is good, any loss is bad, the trend does not matter.
// Cutting: a sustained falling trend wins over a noisy weekly uptick,
// otherwise only a gain above the weekly threshold is bad.
var decisionTable = map[decisionKey]outcome{
	{GoalBulking, differenceGain, trendFalling}:      {Positive, annotationNone},
	{GoalBulking, differenceGain, trendFlatOrRising}: {Positive, annotationNone},
	{GoalBulking, differenceUp, trendFalling}:        {Positive, annotationNone},
	{GoalBulking, differenceUp, trendFlatOrRising}:   {Positive, annotationNone},
	{GoalBulking, differenceDown, trendFalling}:      {Negative, annotationNone},
	{GoalBulking, differenceDown, trendFlatOrRising}: {Negative, annotationNone},

	{GoalCutting, differenceGain, trendFalling}:      {Positive, annotationGreatProgress},
	{GoalCutting, differenceUp, trendFalling}:        {Positive, annotationGreatProgress},
	{GoalCutting, differenceDown, trendFalling}:      {Positive, annotationGreatProgress},
	{GoalCutting, differenceGain, trendFlatOrRising}: {Negative, annotationRising},
	{GoalCutting, differenceUp, trendFlatOrRising}:   {Positive, annotationDirection},
	{GoalCutting, differenceDown, trendFlatOrRising}: {Positive, annotationDirection},
}

// decide looks up the verdict; goals without entries (unknown values) are treated as cutting.
func decide(goal GoalMode, difference differenceClass, trend trendClass) outcome {
	if o, ok := decisionTable[decisionKey{goal, difference, trend}]; ok {
		return o
	}
	return decisionTable[decisionKey{GoalCutting, difference, trend}]
}
