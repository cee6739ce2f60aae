// Package quantize reduces a set of pixels to a small weighted palette.
//
// Wu's variance-minimising box cut gives a fast first palette; weighted
// k-means in L*a*b* then refines it. Running both, Wu feeding k-means, is
// what Material calls the Celebi quantizer.
package quantize

import (
	"github.com/jmylchreest/tonal/internal/colour"
)

const (
	wuIndexBits  = 5
	wuSideLength = 1<<wuIndexBits + 1 // 33
	wuTotalSize  = wuSideLength * wuSideLength * wuSideLength
)

type direction int

const (
	dirRed direction = iota
	dirGreen
	dirBlue
)

// box is a half-open region of the 33^3 histogram grid.
type box struct {
	r0, r1 int
	g0, g1 int
	b0, b1 int
	vol    int
}

// wu holds the cumulative moments of the colour histogram.
type wu struct {
	weights  []int64
	momentsR []int64
	momentsG []int64
	momentsB []int64
	moments  []float64
	cubes    []box
}

// Wu quantizes counts to at most maxColors colours using Wu's algorithm.
// The result is ordered by cube, not by population.
func Wu(counts map[colour.RGB]int, maxColors int) []colour.RGB {
	if len(counts) == 0 || maxColors < 1 {
		return nil
	}
	q := &wu{
		weights:  make([]int64, wuTotalSize),
		momentsR: make([]int64, wuTotalSize),
		momentsG: make([]int64, wuTotalSize),
		momentsB: make([]int64, wuTotalSize),
		moments:  make([]float64, wuTotalSize),
	}
	q.constructHistogram(counts)
	q.computeMoments()
	n := q.createBoxes(maxColors)
	return q.createResult(n)
}

func wuIndex(r, g, b int) int {
	return r*wuSideLength*wuSideLength + g*wuSideLength + b
}

func (q *wu) constructHistogram(counts map[colour.RGB]int) {
	const shift = 8 - wuIndexBits
	for c, n := range counts {
		red, green, blue := int64(c.R), int64(c.G), int64(c.B)
		i := wuIndex(int(c.R>>shift)+1, int(c.G>>shift)+1, int(c.B>>shift)+1)
		count := int64(n)
		q.weights[i] += count
		q.momentsR[i] += count * red
		q.momentsG[i] += count * green
		q.momentsB[i] += count * blue
		q.moments[i] += float64(count * (red*red + green*green + blue*blue))
	}
}

func (q *wu) computeMoments() {
	for r := 1; r < wuSideLength; r++ {
		var (
			area                [wuSideLength]int64
			areaR, areaG, areaB [wuSideLength]int64
			area2               [wuSideLength]float64
		)
		for g := 1; g < wuSideLength; g++ {
			var line, lineR, lineG, lineB int64
			var line2 float64
			for b := 1; b < wuSideLength; b++ {
				i := wuIndex(r, g, b)
				line += q.weights[i]
				lineR += q.momentsR[i]
				lineG += q.momentsG[i]
				lineB += q.momentsB[i]
				line2 += q.moments[i]

				area[b] += line
				areaR[b] += lineR
				areaG[b] += lineG
				areaB[b] += lineB
				area2[b] += line2

				prev := wuIndex(r-1, g, b)
				q.weights[i] = q.weights[prev] + area[b]
				q.momentsR[i] = q.momentsR[prev] + areaR[b]
				q.momentsG[i] = q.momentsG[prev] + areaG[b]
				q.momentsB[i] = q.momentsB[prev] + areaB[b]
				q.moments[i] = q.moments[prev] + area2[b]
			}
		}
	}
}

func (q *wu) createBoxes(maxColors int) int {
	q.cubes = make([]box, maxColors)
	q.cubes[0] = box{r1: wuSideLength - 1, g1: wuSideLength - 1, b1: wuSideLength - 1}
	variances := make([]float64, maxColors)

	generated := maxColors
	next := 0
	for i := 1; i < maxColors; i++ {
		if q.cut(&q.cubes[next], &q.cubes[i]) {
			variances[next] = q.varianceOf(q.cubes[next])
			variances[i] = q.varianceOf(q.cubes[i])
		} else {
			variances[next] = 0
			i--
		}

		next = 0
		best := variances[0]
		for j := 1; j <= i; j++ {
			if variances[j] > best {
				best = variances[j]
				next = j
			}
		}
		if best <= 0 {
			generated = i + 1
			break
		}
	}
	return generated
}

func (q *wu) varianceOf(c box) float64 {
	if c.vol <= 1 {
		return 0
	}
	return q.variance(c)
}

func (q *wu) createResult(n int) []colour.RGB {
	colors := make([]colour.RGB, 0, n)
	for i := 0; i < n; i++ {
		c := q.cubes[i]
		weight := volume(c, q.weights)
		if weight <= 0 {
			continue
		}
		colors = append(colors, colour.RGB{
			R: uint8(volume(c, q.momentsR) / weight),
			G: uint8(volume(c, q.momentsG) / weight),
			B: uint8(volume(c, q.momentsB) / weight),
		})
	}
	return colors
}

func (q *wu) variance(c box) float64 {
	dr := float64(volume(c, q.momentsR))
	dg := float64(volume(c, q.momentsG))
	db := float64(volume(c, q.momentsB))
	xx := q.moments[wuIndex(c.r1, c.g1, c.b1)] -
		q.moments[wuIndex(c.r1, c.g1, c.b0)] -
		q.moments[wuIndex(c.r1, c.g0, c.b1)] +
		q.moments[wuIndex(c.r1, c.g0, c.b0)] -
		q.moments[wuIndex(c.r0, c.g1, c.b1)] +
		q.moments[wuIndex(c.r0, c.g1, c.b0)] +
		q.moments[wuIndex(c.r0, c.g0, c.b1)] -
		q.moments[wuIndex(c.r0, c.g0, c.b0)]
	hypotenuse := dr*dr + dg*dg + db*db
	return xx - hypotenuse/float64(volume(c, q.weights))
}

func (q *wu) cut(one, two *box) bool {
	wholeR := volume(*one, q.momentsR)
	wholeG := volume(*one, q.momentsG)
	wholeB := volume(*one, q.momentsB)
	wholeW := volume(*one, q.weights)

	cutR, maxR := q.maximize(*one, dirRed, one.r0+1, one.r1, wholeR, wholeG, wholeB, wholeW)
	cutG, maxG := q.maximize(*one, dirGreen, one.g0+1, one.g1, wholeR, wholeG, wholeB, wholeW)
	cutB, maxB := q.maximize(*one, dirBlue, one.b0+1, one.b1, wholeR, wholeG, wholeB, wholeW)

	var dir direction
	switch {
	case maxR >= maxG && maxR >= maxB:
		if cutR < 0 {
			return false
		}
		dir = dirRed
	case maxG >= maxR && maxG >= maxB:
		dir = dirGreen
	default:
		dir = dirBlue
	}

	two.r1, two.g1, two.b1 = one.r1, one.g1, one.b1
	switch dir {
	case dirRed:
		one.r1 = cutR
		two.r0, two.g0, two.b0 = one.r1, one.g0, one.b0
	case dirGreen:
		one.g1 = cutG
		two.r0, two.g0, two.b0 = one.r0, one.g1, one.b0
	case dirBlue:
		one.b1 = cutB
		two.r0, two.g0, two.b0 = one.r0, one.g0, one.b1
	}

	one.vol = (one.r1 - one.r0) * (one.g1 - one.g0) * (one.b1 - one.b0)
	two.vol = (two.r1 - two.r0) * (two.g1 - two.g0) * (two.b1 - two.b0)
	return true
}

func (q *wu) maximize(c box, dir direction, first, last int, wholeR, wholeG, wholeB, wholeW int64) (int, float64) {
	bottomR := bottom(c, dir, q.momentsR)
	bottomG := bottom(c, dir, q.momentsG)
	bottomB := bottom(c, dir, q.momentsB)
	bottomW := bottom(c, dir, q.weights)

	best := 0.0
	cut := -1
	for i := first; i < last; i++ {
		halfR := bottomR + top(c, dir, i, q.momentsR)
		halfG := bottomG + top(c, dir, i, q.momentsG)
		halfB := bottomB + top(c, dir, i, q.momentsB)
		halfW := bottomW + top(c, dir, i, q.weights)
		if halfW == 0 {
			continue
		}
		temp := float64(halfR*halfR+halfG*halfG+halfB*halfB) / float64(halfW)

		halfR = wholeR - halfR
		halfG = wholeG - halfG
		halfB = wholeB - halfB
		halfW = wholeW - halfW
		if halfW == 0 {
			continue
		}
		temp += float64(halfR*halfR+halfG*halfG+halfB*halfB) / float64(halfW)

		if temp > best {
			best = temp
			cut = i
		}
	}
	return cut, best
}

func volume(c box, m []int64) int64 {
	return m[wuIndex(c.r1, c.g1, c.b1)] -
		m[wuIndex(c.r1, c.g1, c.b0)] -
		m[wuIndex(c.r1, c.g0, c.b1)] +
		m[wuIndex(c.r1, c.g0, c.b0)] -
		m[wuIndex(c.r0, c.g1, c.b1)] +
		m[wuIndex(c.r0, c.g1, c.b0)] +
		m[wuIndex(c.r0, c.g0, c.b1)] -
		m[wuIndex(c.r0, c.g0, c.b0)]
}

func bottom(c box, dir direction, m []int64) int64 {
	switch dir {
	case dirRed:
		return -m[wuIndex(c.r0, c.g1, c.b1)] +
			m[wuIndex(c.r0, c.g1, c.b0)] +
			m[wuIndex(c.r0, c.g0, c.b1)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	case dirGreen:
		return -m[wuIndex(c.r1, c.g0, c.b1)] +
			m[wuIndex(c.r1, c.g0, c.b0)] +
			m[wuIndex(c.r0, c.g0, c.b1)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	default:
		return -m[wuIndex(c.r1, c.g1, c.b0)] +
			m[wuIndex(c.r1, c.g0, c.b0)] +
			m[wuIndex(c.r0, c.g1, c.b0)] -
			m[wuIndex(c.r0, c.g0, c.b0)]
	}
}

func top(c box, dir direction, pos int, m []int64) int64 {
	switch dir {
	case dirRed:
		return m[wuIndex(pos, c.g1, c.b1)] -
			m[wuIndex(pos, c.g1, c.b0)] -
			m[wuIndex(pos, c.g0, c.b1)] +
			m[wuIndex(pos, c.g0, c.b0)]
	case dirGreen:
		return m[wuIndex(c.r1, pos, c.b1)] -
			m[wuIndex(c.r1, pos, c.b0)] -
			m[wuIndex(c.r0, pos, c.b1)] +
			m[wuIndex(c.r0, pos, c.b0)]
	default:
		return m[wuIndex(c.r1, c.g1, pos)] -
			m[wuIndex(c.r1, c.g0, pos)] -
			m[wuIndex(c.r0, c.g1, pos)] +
			m[wuIndex(c.r0, c.g0, pos)]
	}
}
