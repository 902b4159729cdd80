package goals

import (
	"sort"
	"strconv"

	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
)

const DefaultBinSize = 15

type MinuteBin struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MinuteDistribution histograms every goal event by minute. Minutes below 1
// count as minute 1, bins are right-inclusive ("0-15" holds minutes 1..15)
// and extra time keeps producing bins past 90. Only non-empty bins appear.
func MinuteDistribution(matches []match.Match, binSize int) []MinuteBin {
	if binSize < 1 {
		binSize = DefaultBinSize
	}

	counts := make(map[int]int)
	for _, m := range matches {
		for _, g := range m.Goals {
			minute := max(g.Minute, 1)
			counts[((minute-1)/binSize)*binSize]++
		}
	}

	starts := make([]int, 0, len(counts))
	for start := range counts {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	out := make([]MinuteBin, 0, len(starts))
	for _, start := range starts {
		out = append(out, MinuteBin{
			Label: strconv.Itoa(start) + "-" + strconv.Itoa(start+binSize),
			Count: counts[start],
		})
	}
	return out
}

type SplitMode string

const ModeHalves SplitMode = "halves"

// Split counts goals per period: first half, second half, extra time.
type Split struct {
	FirstHalf  int `json:"1T"`
	SecondHalf int `json:"2T"`
	ExtraTime  int `json:"ET"`
}

// TimeSplit buckets every goal event by period. Halves is the only mode.
func TimeSplit(matches []match.Match, _ SplitMode) Split {
	var out Split
	for _, m := range matches {
		for _, g := range m.Goals {
			switch {
			case g.Minute <= 45:
				out.FirstHalf++
			case g.Minute <= 90:
				out.SecondHalf++
			default:
				out.ExtraTime++
			}
		}
	}
	return out
}

type TimelineEntry struct {
	Minute int    `json:"minute"`
	Player string `json:"player"`
	TeamID string `json:"teamId"`
}

// Timeline lists the goals of one match by minute; same-minute goals keep recorded order.
func Timeline(m match.Match) []TimelineEntry {
	out := make([]TimelineEntry, 0, len(m.Goals))
	for _, g := range m.Goals {
		out = append(out, TimelineEntry{
			Minute: g.Minute,
			Player: g.Player,
			TeamID: g.TeamCode,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Minute < out[j].Minute
	})
	return out
}
