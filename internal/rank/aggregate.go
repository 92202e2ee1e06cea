package rank

import (
	"errors"
	"sort"
)

// ErrNoData reports that no source produced any usable ranking.
var ErrNoData = errors.New("no ranking sources available")

// SourceRank is one creator's rank within a single source. Creators
// absent from the source carry the penalty rank MaxRank+1.
type SourceRank struct {
	Source string
	Rank   int
}

// CreatorRank is the aggregate for one creator across every source.
// PerSource holds exactly one entry per input source, in input order.
type CreatorRank struct {
	Creator     Creator
	AverageRank float64
	PerSource   []SourceRank
}

// Aggregate averages each creator's rank across the given sources.
// Within one source, entities mapping to the same creator keep the best
// (lowest) rank; creators absent from a source take that source's
// MaxRank+1. The result always holds exactly the four tracked creators,
// best average first; exact ties keep canonical creator order.
func Aggregate(sources []Source) ([]CreatorRank, error) {
	var usable []Source
	for _, s := range sources {
		if len(s.Ranks) > 0 {
			usable = append(usable, s)
		}
	}
	if len(usable) == 0 {
		return nil, ErrNoData
	}

	out := make([]CreatorRank, 0, len(Creators))
	for _, c := range Creators {
		out = append(out, CreatorRank{Creator: c})
	}

	for _, src := range usable {
		best := make(map[Creator]int, len(Creators))
		for entity, r := range src.Ranks {
			c, ok := MapCreator(entity)
			if !ok {
				continue
			}
			if prev, seen := best[c]; !seen || r < prev {
				best[c] = r
			}
		}
		for i := range out {
			r, ok := best[out[i].Creator]
			if !ok {
				r = src.MaxRank + 1
			}
			out[i].PerSource = append(out[i].PerSource, SourceRank{Source: src.Name, Rank: r})
		}
	}

	for i := range out {
		total := 0
		for _, sr := range out[i].PerSource {
			total += sr.Rank
		}
		out[i].AverageRank = float64(total) / float64(len(usable))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRank < out[j].AverageRank
	})
	return out, nil
}
