package flame

import "math"

// FadeInAmount opens the canvas up after a reset. It is 1 at elapsedMs 0 and
// falls quadratically to 0 at fadeInMs.
func FadeInAmount(elapsedMs, fadeInMs float64) float32 {
	if fadeInMs <= 0 {
		return 0
	}
	t := math.Min(math.Max(elapsedMs/fadeInMs, 0), 1)
	return float32(1 - t*t)
}

// FadeOutAmount is the share of the accumulated image to remove for a frame
// that took deltaMs, such that fadeOutPercent of it is gone after fadeOutMs
// regardless of the frame rate.
func FadeOutAmount(deltaMs, fadeOutMs, fadeOutPercent float64) float32 {
	if deltaMs <= 0 || fadeOutMs <= 0 {
		return 0
	}
	return float32(1 - math.Pow(1-fadeOutPercent, deltaMs/fadeOutMs))
}
