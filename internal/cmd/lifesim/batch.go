package lifesim

import (
	"context"
	"sort"
	"sync"

	"lifesim/internal/config"
)

// batchSummary aggregates many runs.
type batchSummary struct {
	Runs             int                `json:"runs"`
	Seed             int64              `json:"seed"`
	Unfinished       int                `json:"unfinished"`
	AvgYears         float64            `json:"avg_years"`
	AvgStats         map[string]float64 `json:"avg_stats"`
	Endings          []endingShare      `json:"endings"`
	AchievementRates map[string]float64 `json:"achievement_rates"`
	CareerRates      map[string]float64 `json:"career_rates"`
}

type endingShare struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Count int     `json:"count"`
	Ratio float64 `json:"ratio"`
}

// runSeed spaces per-run seeds so run i is the same no matter which worker
// picks it up.
func runSeed(base int64, i int) int64 {
	return base + int64(i)*7919
}

func runBatch(ctx context.Context, b *config.Bundle, cfg Config, seed int64) (batchSummary, error) {
	type stat struct {
		unfinished int
		sumYears   int
		sumStats   map[string]int
		endings    map[string]int
		titles     map[string]string
		achv       map[string]int
		careers    map[string]int
		err        error
	}
	st := stat{
		sumStats: map[string]int{},
		endings:  map[string]int{},
		titles:   map[string]string{},
		achv:     map[string]int{},
		careers:  map[string]int{},
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := cfg.Runs
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	talents := cfg.TalentIDs()

	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := simulate(ctx, b, runSeed(seed, i), talents, cfg.MaxYears, nil)

				mu.Lock()
				if err != nil {
					if st.err == nil {
						st.err = err
						cancel()
					}
					mu.Unlock()
					continue
				}
				if !res.Finished {
					st.unfinished++
				}
				st.sumYears += res.Summary.TotalYears
				for k, v := range res.Summary.Stats {
					st.sumStats[k] += v
				}
				st.endings[res.Summary.Ending.ID]++
				st.titles[res.Summary.Ending.ID] = res.Summary.Ending.Title
				for _, id := range res.Summary.Achievements {
					st.achv[id]++
				}
				for _, id := range res.Summary.CareerNodes {
					st.careers[id]++
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	if st.err != nil {
		return batchSummary{}, st.err
	}

	ratio := func(m map[string]int) map[string]float64 {
		out := make(map[string]float64, len(m))
		for k, v := range m {
			out[k] = float64(v) / float64(n)
		}
		return out
	}
	avgStats := make(map[string]float64, len(st.sumStats))
	for k, v := range st.sumStats {
		avgStats[k] = float64(v) / float64(n)
	}
	endings := make([]endingShare, 0, len(st.endings))
	for id, c := range st.endings {
		endings = append(endings, endingShare{ID: id, Title: st.titles[id], Count: c, Ratio: float64(c) / float64(n)})
	}
	sort.Slice(endings, func(i, j int) bool {
		if endings[i].Count != endings[j].Count {
			return endings[i].Count > endings[j].Count
		}
		return endings[i].ID < endings[j].ID
	})

	return batchSummary{
		Runs:             n,
		Seed:             seed,
		Unfinished:       st.unfinished,
		AvgYears:         float64(st.sumYears) / float64(n),
		AvgStats:         avgStats,
		Endings:          endings,
		AchievementRates: ratio(st.achv),
		CareerRates:      ratio(st.careers),
	}, nil
}
