package sim

import (
	"errors"
	"math"
	"strings"
)

// ErrBadFrameSize indicates a frame too small to draw anything.
var ErrBadFrameSize = errors.New("frame must be at least 10x10")

// luminance ramp, darkest to brightest.
const donutGlyphs = ".,-~:;=!*#$@"

// DonutFrame renders one frame of the spinning torus at rotation angles a
// and b. Classic z-buffered projection; rows are joined with newlines.
func DonutFrame(width, height int, a, b float64) (string, error) {
	if width < 10 || height < 10 {
		return "", ErrBadFrameSize
	}

	const (
		thetaStep = 0.07
		phiStep   = 0.02
		r1        = 1.0 // tube radius
		r2        = 2.0 // torus radius
		k2        = 5.0 // viewer distance
	)
	// Scale so the donut fills most of the frame.
	k1 := float64(width) * k2 * 3 / (8 * (r1 + r2))

	output := make([]byte, width*height)
	zbuf := make([]float64, width*height)
	for i := range output {
		output[i] = ' '
	}

	sinA, cosA := math.Sin(a), math.Cos(a)
	sinB, cosB := math.Sin(b), math.Cos(b)

	for theta := 0.0; theta < 2*math.Pi; theta += thetaStep {
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		circleX := r2 + r1*cosT
		circleY := r1 * sinT

		for phi := 0.0; phi < 2*math.Pi; phi += phiStep {
			sinP, cosP := math.Sin(phi), math.Cos(phi)

			x := circleX*(cosB*cosP+sinA*sinB*sinP) - circleY*cosA*sinB
			y := circleX*(sinB*cosP-sinA*cosB*sinP) + circleY*cosA*cosB
			z := k2 + cosA*circleX*sinP + circleY*sinA
			ooz := 1 / z

			px := width/2 + int(k1*ooz*x)
			py := height/2 - int(k1*ooz*y/2) // terminal cells are taller than wide

			if px < 0 || px >= width || py < 0 || py >= height {
				continue
			}

			lum := cosP*cosT*sinB - cosA*cosT*sinP - sinA*sinT + cosB*(cosA*sinT-cosT*sinA*sinP)
			idx := py*width + px
			if ooz > zbuf[idx] {
				zbuf[idx] = ooz
				g := 0
				if lum > 0 {
					g = int(lum * 8)
					if g >= len(donutGlyphs) {
						g = len(donutGlyphs) - 1
					}
				}
				output[idx] = donutGlyphs[g]
			}
		}
	}

	var sb strings.Builder
	sb.Grow(height * (width + 1))
	for row := 0; row < height; row++ {
		sb.Write(output[row*width : (row+1)*width])
		if row != height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
