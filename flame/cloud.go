package flame

import (
	"sync"
)

// Source is the randomness the point cloud draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Point is laid out to be uploaded to a vertex buffer as three floats.
//
// Colour is the smoothed index of the shape maps that recently moved the
// point, in [0, 2].
type Point struct {
	X, Y   float32
	Colour float32
}

// PointCloud owns a fixed number of points and iterates them through an
// IteratedFunctionSet.
type PointCloud struct {
	points  []Point
	sources []Source
}

// NewPointCloud places n points uniformly in [-1,1]^2 with a colour index
// drawn from {0, 1, 2}.
//
// Each source drives one contiguous chunk of the cloud during Advance; chunks
// are advanced concurrently. A single source gives a fully sequential,
// reproducible kernel.
func NewPointCloud(n int, sources ...Source) *PointCloud {
	if len(sources) == 0 {
		panic("flame: NewPointCloud needs at least one source")
	}

	rng := sources[0]
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X:      float32(rng.Float64()*2 - 1),
			Y:      float32(rng.Float64()*2 - 1),
			Colour: float32(rng.IntN(WildcardIndex)),
		}
	}

	return NewPointCloudFrom(points, sources...)
}

// NewPointCloudFrom takes ownership of points.
func NewPointCloudFrom(points []Point, sources ...Source) *PointCloud {
	if len(sources) == 0 {
		panic("flame: NewPointCloudFrom needs at least one source")
	}
	if len(sources) > len(points) && len(points) > 0 {
		sources = sources[:len(points)]
	}

	return &PointCloud{
		points:  points,
		sources: sources,
	}
}

func (c *PointCloud) Points() []Point {
	return c.points
}

func (c *PointCloud) Len() int {
	return len(c.points)
}

// Advance moves every point by one randomly selected map of set.
func (c *PointCloud) Advance(set *IteratedFunctionSet) {
	if len(c.sources) == 1 {
		advance(c.points, set, c.sources[0])
		return
	}

	chunkSize := (len(c.points) + len(c.sources) - 1) / len(c.sources)
	var wg sync.WaitGroup

	for i, rng := range c.sources {
		chunkMin := i * chunkSize
		if chunkMin >= len(c.points) {
			break
		}
		chunkMax := chunkMin + chunkSize
		if chunkMax > len(c.points) {
			chunkMax = len(c.points)
		}

		wg.Add(1)
		go func(chunk []Point, rng Source) {
			defer wg.Done()
			advance(chunk, set, rng)
		}(c.points[chunkMin:chunkMax], rng)
	}

	wg.Wait()
}

func advance(points []Point, set *IteratedFunctionSet, rng Source) {
	for i := range points {
		p := &points[i]

		index := SelectMap(rng.IntN(Slots))
		x, y := set[index].Apply(float64(p.X), float64(p.Y))
		p.X, p.Y = float32(x), float32(y)

		if index != WildcardIndex {
			p.Colour = (p.Colour + float32(index)) / 2
		}
	}
}
