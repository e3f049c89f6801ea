package ui

import (
	"context"
	"fmt"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StripUI is a manual-control window with one slider per channel and a
// color preview.
type StripUI struct {
	red, green, blue float64

	preview *canvas.Rectangle
	writer  *commandWriter
}

func NewStripUI() *StripUI {
	return &StripUI{}
}

func (ui *StripUI) createSlider(labelText string, set func(float64)) *fyne.Container {
	valueLabel := widget.NewLabel("0")

	slider := widget.NewSlider(0, 255)
	slider.Step = 1
	slider.OnChanged = func(value float64) {
		valueLabel.SetText(fmt.Sprintf("%.0f", value))
		set(value)
		ui.updatePreview()
	}
	// only send to the strip once the drag settles
	slider.OnChangeEnded = func(value float64) {
		set(value)
		ui.writer.SetRGB(ui.red, ui.green, ui.blue)
	}

	return container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel(labelText),
			valueLabel,
		),
		slider,
	)
}

func (ui *StripUI) updatePreview() {
	ui.preview.FillColor = color.RGBA{
		R: uint8(ui.red),
		G: uint8(ui.green),
		B: uint8(ui.blue),
		A: 255,
	}
	ui.preview.Refresh()
}

// Run shows the window and writes one command line per adjustment to w.
// It blocks until the window closes or the context is cancelled; it must
// run on the main goroutine.
func (ui *StripUI) Run(ctx context.Context, w io.Writer) {
	application := app.New()
	window := application.NewWindow("LED Strip")

	ui.writer = &commandWriter{writer: w}
	ui.preview = canvas.NewRectangle(color.RGBA{A: 255})
	ui.preview.SetMinSize(fyne.NewSize(280, 60))

	contentContainer := container.NewVBox(
		ui.preview,
		ui.createSlider("Red", func(v float64) { ui.red = v }),
		ui.createSlider("Green", func(v float64) { ui.green = v }),
		ui.createSlider("Blue", func(v float64) { ui.blue = v }),
	)

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			application.Quit()
		})
	}()

	window.SetContent(contentContainer)
	window.Resize(fyne.NewSize(300, 280))
	window.ShowAndRun()
}
