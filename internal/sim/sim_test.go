package sim

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRng(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func TestPanStages(t *testing.T) {
	var p Pan
	assert.Equal(t, Raw, p.Doneness())

	d, err := p.Step(45)
	require.NoError(t, err)
	assert.Equal(t, Runny, d)

	p.Flip()
	d, _ = p.Step(30) // 75s total
	assert.Equal(t, OverEasy, d)

	d, _ = p.Step(60) // 135s total
	assert.Equal(t, WellDone, d)

	d, _ = p.Step(60) // 195s total
	assert.Equal(t, Burnt, d)
}

func TestPanNeverFlippedStaysRunny(t *testing.T) {
	var p Pan
	d, err := p.Step(100)
	require.NoError(t, err)
	assert.Equal(t, Runny, d)

	// Leave it long enough and it still burns.
	d, _ = p.Step(100)
	assert.Equal(t, Burnt, d)
}

func TestParseDoneness(t *testing.T) {
	d, err := ParseDoneness("over-easy")
	require.NoError(t, err)
	assert.Equal(t, OverEasy, d)

	_, err = ParseDoneness("raw") // not a target you can aim for
	assert.ErrorIs(t, err, ErrUnknownDoneness)
}

func TestPanRejectsNegativeStep(t *testing.T) {
	var p Pan
	_, err := p.Step(-1)
	assert.ErrorIs(t, err, ErrNegativeHeat)
}

func TestRandomPlateFormat(t *testing.T) {
	rng := newTestRng(5)
	for i := 0; i < 50; i++ {
		p := RandomPlate(rng)
		require.Len(t, p, 7)
		assert.Equal(t, byte('-'), p[3])
		for _, c := range p[:3] {
			assert.Contains(t, plateLetters, string(c))
		}
		for _, c := range p[4:] {
			assert.Contains(t, plateDigits, string(c))
		}
	}
}

func TestDetectorPerfectAccuracy(t *testing.T) {
	d := NewDetector([]string{"ABC-123"}, 1.0)
	report, err := d.Scan(100, 7)
	require.NoError(t, err)

	assert.Equal(t, 100, report.Passed)
	assert.Greater(t, report.Watched, 0)
	assert.Equal(t, 1.0, report.HitRate)
	assert.Len(t, report.Detections, report.Watched)
}

func TestDetectorDeterministic(t *testing.T) {
	d := NewDetector([]string{"ABC-123", "XYZ-999"}, 0.8)
	a, err := d.Scan(200, 3)
	require.NoError(t, err)
	b, err := d.Scan(200, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDetectorRejectsEmptyScan(t *testing.T) {
	d := NewDetector(nil, 1.0)
	_, err := d.Scan(0, 1)
	assert.ErrorIs(t, err, ErrNoPlates)
}

func TestFleetDeliversWithoutNegativeStock(t *testing.T) {
	fleet, err := NewFleet(
		[]Port{{Name: "Shanghai", Stock: 100}, {Name: "Rotterdam"}},
		[]Ship{{Name: "Evergreen", From: "Shanghai", To: "Rotterdam", Capacity: 30, Transit: 2}},
	)
	require.NoError(t, err)

	fleet.Run(40)

	total := 0
	for _, p := range fleet.Ports() {
		assert.GreaterOrEqual(t, p.Stock, 0, "port %s", p.Name)
		total += p.Delivered
	}
	assert.Equal(t, total, fleet.TotalDelivered())
	assert.Greater(t, fleet.TotalDelivered(), 0)
	assert.LessOrEqual(t, fleet.TotalDelivered(), 100)
}

func TestFleetDrainsStockEventually(t *testing.T) {
	fleet, err := NewFleet(
		[]Port{{Name: "A", Stock: 60}, {Name: "B"}},
		[]Ship{{Name: "S", From: "A", To: "B", Capacity: 30, Transit: 1}},
	)
	require.NoError(t, err)

	fleet.Run(100)
	assert.Equal(t, 60, fleet.TotalDelivered())
	ports := fleet.Ports()
	assert.Equal(t, 0, ports[0].Stock)
	assert.Equal(t, 60, ports[1].Delivered)
}

func TestFleetRejectsBadNetwork(t *testing.T) {
	_, err := NewFleet([]Port{{Name: "A"}}, []Ship{{Name: "S", From: "A", To: "Nowhere", Capacity: 1}})
	assert.ErrorIs(t, err, ErrUnknownPort)

	_, err = NewFleet([]Port{{Name: "A"}}, []Ship{{Name: "S", From: "A", To: "A", Capacity: 0}})
	assert.ErrorIs(t, err, ErrBadCapacity)
}

func TestDonutFrameShape(t *testing.T) {
	frame, err := DonutFrame(40, 20, 0, 0)
	require.NoError(t, err)

	rows := strings.Split(frame, "\n")
	require.Len(t, rows, 20)
	for _, r := range rows {
		assert.Len(t, r, 40)
	}
	// The torus must actually draw something.
	trimmed := strings.ReplaceAll(strings.ReplaceAll(frame, " ", ""), "\n", "")
	assert.NotEmpty(t, trimmed)
	for _, c := range trimmed {
		assert.Contains(t, donutGlyphs, string(c))
	}
}

func TestDonutFrameRotates(t *testing.T) {
	a, err := DonutFrame(40, 20, 0, 0)
	require.NoError(t, err)
	b, err := DonutFrame(40, 20, 1.0, 0.5)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDonutFrameRejectsTinyFrame(t *testing.T) {
	_, err := DonutFrame(5, 5, 0, 0)
	assert.ErrorIs(t, err, ErrBadFrameSize)
}

func TestErrorsAreSentinels(t *testing.T) {
	_, err := NewFleet(nil, []Ship{{Name: "S", From: "A", To: "B", Capacity: 1}})
	assert.True(t, errors.Is(err, ErrUnknownPort))
}
