package main

import (
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	glog "github.com/zoltanbognar/sliders/internal/log"
	"github.com/zoltanbognar/sliders/internal/ui"
)

type demo struct {
	panel *ui.Panel
	vert  *ui.Slider
	w, h  int
}

func (d *demo) Update() error {
	d.panel.Update()
	d.vert.Update()
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})
	d.panel.Draw(screen)
	d.vert.Draw(screen)
}

func (d *demo) Layout(w, h int) (int, int) {
	if w != d.w || h != d.h {
		d.w, d.h = w, h
		d.panel.SetBounds(image.Rect(10, 10, w-80, h-10))
		d.vert.SetRect(image.Rect(w-60, 20, w-30, h-20))
	}
	return w, h
}

func main() {
	logger := glog.New(os.Stderr, glog.LevelFromString(os.Getenv("SLIDERS_LOG_LEVEL")))

	volume := ui.NewSlider(ui.Config{
		Bounds:           ui.Bounds{Lower: 0, Upper: 100},
		InteractiveTrack: true,
	})
	volume.SetValue(40)

	stepped := ui.NewSlider(ui.Config{
		Bounds:           ui.Bounds{Lower: 0, Upper: 10},
		Step:             1,
		InteractiveTrack: true,
	})
	stepped.SetValue(5)

	mirrored := ui.NewSlider(ui.Config{
		Bounds: ui.Bounds{Lower: -1, Upper: 1},
	})
	mirrored.SetInverted(true)

	panel := ui.NewPanel(logger)
	panel.AddRow("volume", volume)
	panel.AddRow("steps", stepped)
	panel.AddRow("balance", mirrored)

	vert := ui.NewSlider(ui.Config{
		Bounds:           ui.Bounds{Lower: 0, Upper: 1},
		InteractiveTrack: true,
	})
	vert.SetAxis(ui.Vertical)
	vert.SetInverted(true) // bottom-to-top
	vert.SetValue(0.5)

	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowTitle("sliders demo")
	if err := ebiten.RunGame(&demo{panel: panel, vert: vert}); err != nil {
		log.Fatal(err)
	}
}
