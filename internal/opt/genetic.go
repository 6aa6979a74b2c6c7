package opt

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// GeneticParams tunes the evolutionary tour search. Zero values fall back to
// the defaults below, except Generations: zero generations is meaningful and
// returns the best individual of the initial random population.
type GeneticParams struct {
	Generations    int
	PopulationSize int
	MutationRate   float64
	EliteCount     int
	TournamentSize int
	Seed           int64 // 0 seeds from the clock
}

// DefaultGeneticParams matches the service defaults: 100 generations over a
// population of 50.
func DefaultGeneticParams() GeneticParams {
	return GeneticParams{
		Generations:    100,
		PopulationSize: 50,
		MutationRate:   0.1,
		EliteCount:     5,
		TournamentSize: 5,
	}
}

func (p GeneticParams) withDefaults() GeneticParams {
	if p.PopulationSize <= 0 {
		p.PopulationSize = 50
	}
	if p.MutationRate <= 0 {
		p.MutationRate = 0.1
	}
	if p.EliteCount <= 0 {
		p.EliteCount = 5
	}
	if p.TournamentSize <= 0 {
		p.TournamentSize = 5
	}
	if p.Generations < 0 {
		p.Generations = 0
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
	return p
}

// GeneticTour solves the closed-tour ordering problem: visit every stop
// exactly once starting and ending at start. Individuals encode
// [start] + permutation(stops) + [start]; fitness is 1/(cost+1) with exactly
// 0 for tours crossing a missing edge, which removes them from selection
// pressure without evicting them from the population.
func (o *Optimizer) GeneticTour(start string, stops []string, params GeneticParams) ([]string, float64, error) {
	if err := o.ensureKnown(start); err != nil {
		return nil, math.Inf(1), err
	}
	if err := o.ensureKnown(stops...); err != nil {
		return nil, math.Inf(1), err
	}
	if len(stops) == 0 {
		return []string{start}, 0, nil
	}

	p := params.withDefaults()
	rng := rand.New(rand.NewSource(p.Seed))

	newIndividual := func() []string {
		mid := append([]string(nil), stops...)
		rng.Shuffle(len(mid), func(i, j int) { mid[i], mid[j] = mid[j], mid[i] })
		ind := make([]string, 0, len(mid)+2)
		ind = append(ind, start)
		ind = append(ind, mid...)
		return append(ind, start)
	}

	population := make([][]string, p.PopulationSize)
	for i := range population {
		population[i] = newIndividual()
	}

	fitness := func(route []string) float64 {
		cost := o.RouteCost(route)
		if math.IsInf(cost, 1) {
			return 0
		}
		return 1 / (cost + 1)
	}

	// Tournament selection: sample without replacement, highest fitness wins.
	selectParent := func(pop [][]string) []string {
		k := p.TournamentSize
		if k > len(pop) {
			k = len(pop)
		}
		idx := rng.Perm(len(pop))[:k]
		best := pop[idx[0]]
		bestFit := fitness(best)
		for _, i := range idx[1:] {
			if f := fitness(pop[i]); f > bestFit {
				best, bestFit = pop[i], f
			}
		}
		return best
	}

	// Order crossover on the interior segment. The child takes parent one's
	// slice [c1:c2) verbatim and fills the rest with parent two's stops in
	// their relative order, which always yields a valid permutation.
	crossover := func(p1, p2 []string) []string {
		size := len(p1) - 2
		if size < 2 {
			return append([]string(nil), p1...)
		}
		c1 := rng.Intn(size)
		c2 := c1 + 1 + rng.Intn(size-c1)

		interior := make([]string, size)
		copied := make(map[string]bool, c2-c1)
		for i := c1; i < c2; i++ {
			interior[i] = p1[i+1]
			copied[interior[i]] = true
		}
		var fill []string
		for _, g := range p2[1 : len(p2)-1] {
			if !copied[g] {
				fill = append(fill, g)
			}
		}
		j := 0
		for i := 0; i < size; i++ {
			if interior[i] == "" {
				interior[i] = fill[j]
				j++
			}
		}
		child := make([]string, 0, size+2)
		child = append(child, start)
		child = append(child, interior...)
		return append(child, start)
	}

	// Swap mutation on two interior positions; endpoints stay fixed.
	mutate := func(route []string) []string {
		if rng.Float64() >= p.MutationRate {
			return route
		}
		if len(route) <= 3 {
			return route // interior needs at least 2 elements
		}
		out := append([]string(nil), route...)
		n := len(out) - 2
		i := 1 + rng.Intn(n)
		j := 1 + rng.Intn(n)
		for j == i {
			j = 1 + rng.Intn(n)
		}
		out[i], out[j] = out[j], out[i]
		return out
	}

	for gen := 0; gen < p.Generations; gen++ {
		ranked := make([]int, len(population))
		for i := range ranked {
			ranked[i] = i
		}
		fits := make([]float64, len(population))
		for i, ind := range population {
			fits[i] = fitness(ind)
		}
		sort.SliceStable(ranked, func(a, b int) bool { return fits[ranked[a]] > fits[ranked[b]] })

		elite := p.EliteCount
		if elite > len(population) {
			elite = len(population)
		}
		next := make([][]string, 0, p.PopulationSize)
		for _, i := range ranked[:elite] {
			next = append(next, population[i])
		}
		for len(next) < p.PopulationSize {
			child := crossover(selectParent(population), selectParent(population))
			next = append(next, mutate(child))
		}
		population = next
	}

	best := population[0]
	bestFit := fitness(best)
	for _, ind := range population[1:] {
		if f := fitness(ind); f > bestFit {
			best, bestFit = ind, f
		}
	}
	return best, o.RouteCost(best), nil
}
