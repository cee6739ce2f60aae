package quantize

import (
	"math"
	"slices"

	"github.com/jmylchreest/tonal/internal/colour"
)

const (
	wsmeansMaxIterations = 10
	// Points whose nearest cluster changes by less than this (in L*a*b*
	// distance units) are left where they are.
	wsmeansMinMovement = 3.0
)

type labPoint [3]float64

func toLab(c colour.RGB) labPoint {
	l, a, b := c.Lab()
	return labPoint{l, a, b}
}

func (p labPoint) rgb() colour.RGB {
	return colour.FromLab(p[0], p[1], p[2])
}

// distance returns the squared Euclidean distance.
func (p labPoint) distance(o labPoint) float64 {
	d0, d1, d2 := p[0]-o[0], p[1]-o[1], p[2]-o[2]
	return d0*d0 + d1*d1 + d2*d2
}

type distanceToIndex struct {
	distance float64
	index    int
}

// WSMeans runs weighted k-means in L*a*b* over the unique colours of
// pixels, starting from the given clusters. Each resulting colour maps to
// the number of pixels assigned to it. Without starting clusters, the first
// maxColors unique colours seed the clusters, so the result is always
// deterministic for a given input order.
func WSMeans(pixels []colour.RGB, starting []colour.RGB, maxColors int) map[colour.RGB]int {
	if len(pixels) == 0 || maxColors < 1 {
		return map[colour.RGB]int{}
	}

	// Unique colours in first-seen order with their counts.
	index := map[colour.RGB]int{}
	var uniques []colour.RGB
	var counts []int
	for _, p := range pixels {
		if i, ok := index[p]; ok {
			counts[i]++
			continue
		}
		index[p] = len(uniques)
		uniques = append(uniques, p)
		counts = append(counts, 1)
	}

	points := make([]labPoint, len(uniques))
	for i, c := range uniques {
		points[i] = toLab(c)
	}

	clusterCount := min(maxColors, len(points))
	if len(starting) > 0 {
		clusterCount = min(clusterCount, len(starting))
	}

	clusters := make([]labPoint, 0, clusterCount)
	for _, c := range starting {
		if len(clusters) == clusterCount {
			break
		}
		clusters = append(clusters, toLab(c))
	}
	for i := 0; len(clusters) < clusterCount; i++ {
		clusters = append(clusters, points[i])
	}

	assignments := make([]int, len(points))
	for i, point := range points {
		assignments[i] = nearest(point, clusters)
	}

	distances := make([][]distanceToIndex, clusterCount)
	for i := range distances {
		distances[i] = make([]distanceToIndex, clusterCount)
	}
	populations := make([]int, clusterCount)

	for iteration := 0; iteration < wsmeansMaxIterations; iteration++ {
		// Inter-cluster distances, each row sorted nearest first, let the
		// assignment step skip clusters that cannot be closer.
		for i := 0; i < clusterCount; i++ {
			for j := 0; j < clusterCount; j++ {
				distances[i][j] = distanceToIndex{distance: clusters[i].distance(clusters[j]), index: j}
			}
			slices.SortStableFunc(distances[i], func(a, b distanceToIndex) int {
				switch {
				case a.distance < b.distance:
					return -1
				case a.distance > b.distance:
					return 1
				}
				return 0
			})
		}

		moved := 0
		for i, point := range points {
			prev := assignments[i]
			prevDistance := point.distance(clusters[prev])
			best := prevDistance
			next := -1
			for _, candidate := range distances[prev] {
				if candidate.distance >= 4*prevDistance {
					continue
				}
				d := point.distance(clusters[candidate.index])
				if d < best {
					best = d
					next = candidate.index
				}
			}
			if next == -1 {
				continue
			}
			if math.Abs(math.Sqrt(best)-math.Sqrt(prevDistance)) > wsmeansMinMovement {
				moved++
				assignments[i] = next
			}
		}
		if moved == 0 && iteration != 0 {
			break
		}

		sums := make([]labPoint, clusterCount)
		clear(populations)
		for i, point := range points {
			c := assignments[i]
			n := float64(counts[i])
			populations[c] += counts[i]
			sums[c][0] += point[0] * n
			sums[c][1] += point[1] * n
			sums[c][2] += point[2] * n
		}
		for c := range clusters {
			n := populations[c]
			if n == 0 {
				clusters[c] = labPoint{}
				continue
			}
			clusters[c] = labPoint{sums[c][0] / float64(n), sums[c][1] / float64(n), sums[c][2] / float64(n)}
		}
	}

	result := make(map[colour.RGB]int, clusterCount)
	for c, cluster := range clusters {
		if populations[c] == 0 {
			continue
		}
		// Clusters that round to the same sRGB colour are merged.
		result[cluster.rgb()] += populations[c]
	}
	return result
}

func nearest(p labPoint, clusters []labPoint) int {
	best, bestDistance := 0, math.Inf(1)
	for i, c := range clusters {
		if d := p.distance(c); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best
}
