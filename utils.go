package citytowers

import (
	"bytes"
	"image"
	"image/png"
	"math/rand"
	"os"

	"github.com/unixpickle/model3d/model2d"
)

// calculateDist standard pythag.
func calculateDist(ax, ay, bx, by int) float64 {
	a := model2d.Coord{X: float64(ax), Y: float64(ay)}
	return a.Dist(model2d.Coord{X: float64(bx), Y: float64(by)})
}

// sampleIndices picks k distinct indices from [0, n) uniformly at random.
// k is expected to be within [0, n].
func sampleIndices(rng *rand.Rand, n, k int) []int {
	return rng.Perm(n)[:k]
}

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}
