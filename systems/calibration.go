package systems

import (
	"fmt"

	"github.com/Mehmet-Adil/Muscle-Survivors/components"
	cfg "github.com/Mehmet-Adil/Muscle-Survivors/config"
	"github.com/Mehmet-Adil/Muscle-Survivors/fonts"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var promptOp = &ebiten.DrawImageOptions{}

// UpdateCalibrationPulse restarts the prompt pulse every time the countdown
// ticks or the phase changes, then advances it one frame.
func UpdateCalibrationPulse(ecs *ecs.ECS) {
	entry, ok := components.Calibration.First(ecs.World)
	if !ok {
		return
	}
	cal := components.Calibration.Get(entry)
	if cal.Done() {
		return
	}

	phase, count := cal.Phase(), cal.Remaining()
	if cal.Pulse == nil || phase != cal.LastPhase || count != cal.LastCount {
		peak := float32(1 + cfg.Calibrate.PulseScale)
		cal.Pulse = gween.New(peak, 1, 1, ease.OutCubic)
		cal.LastPhase = phase
		cal.LastCount = count
	}

	scale, _ := cal.Pulse.Update(1 / float32(cfg.C.TPS))
	cal.Scale = scale
}

// DrawCalibration renders the prompt, the countdown and a preview of the
// detected keypoints while the player calibrates.
func DrawCalibration(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := getMatch(ecs)
	if !ok || match.Context.State != cfg.StateCalibrating {
		return
	}
	entry, ok := components.Calibration.First(ecs.World)
	if !ok {
		return
	}
	cal := components.Calibration.Get(entry)

	screen.Fill(cfg.Calibrate.BackgroundColor)
	width := float64(screen.Bounds().Dx())

	title := cfg.Calibrate.Title
	titleX := int((width - float64(fonts.Width(fonts.Title, title))) / 2)
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(cfg.Calibrate.TitleY), cfg.Calibrate.TitleColor)

	if prompt := cal.Prompt(); prompt != "" {
		drawPulsed(screen, prompt, cal.Scale, width/2, cfg.Calibrate.PromptY)
	}

	countdown := fmt.Sprintf("%ds", cal.Remaining())
	countX := int((width - float64(fonts.Width(fonts.Bold, countdown))) / 2)
	text.Draw(screen, countdown, fonts.Bold.Get(), countX, int(cfg.Calibrate.CountdownY), cfg.Calibrate.CountdownColor)

	drawPreview(screen, match.Loop.Signal.Frame(), width/2, cfg.Calibrate.CountdownY+40)
}

// drawPulsed draws s centered on cx with its baseline at y, scaled around
// its own center.
func drawPulsed(screen *ebiten.Image, s string, scale float32, cx, y float64) {
	if scale <= 0 {
		scale = 1
	}
	w := float64(fonts.Width(fonts.Prompt, s))
	promptOp.GeoM.Reset()
	promptOp.GeoM.Translate(-w/2, 0)
	promptOp.GeoM.Scale(float64(scale), float64(scale))
	promptOp.GeoM.Translate(cx, y)
	promptOp.ColorScale.Reset()
	promptOp.ColorScale.ScaleWithColor(cfg.Calibrate.PromptColor)
	text.DrawWithOptions(screen, s, fonts.Prompt.Get(), promptOp)
}

// drawPreview plots the frame's keypoints in a box whose top edge is centered
// on (cx, top).
func drawPreview(screen *ebiten.Image, frame pose.Frame, cx, top float64) {
	pw, ph := cfg.Calibrate.PreviewWidth, cfg.Calibrate.PreviewHeight
	left := cx - pw/2
	vector.StrokeRect(screen, float32(left), float32(top), float32(pw), float32(ph), 2, cfg.Calibrate.TitleColor, false)

	sx := pw / cfg.Calibrate.SourceWidth
	sy := ph / cfg.Calibrate.SourceHeight
	for _, kp := range frame {
		x := left + float64(kp.X)*sx
		y := top + float64(kp.Y)*sy
		if x < left || x > left+pw || y < top || y > top+ph {
			continue
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), cfg.Calibrate.KeypointRadius, cfg.Calibrate.KeypointColor, true)
	}

	if shoulders, ok := frame.Shoulders(); ok {
		a, b := shoulders[0], shoulders[1]
		vector.StrokeLine(screen,
			float32(left+float64(a.X)*sx), float32(top+float64(a.Y)*sy),
			float32(left+float64(b.X)*sx), float32(top+float64(b.Y)*sy),
			2, cfg.Calibrate.KeypointColor, true)
	}
}
