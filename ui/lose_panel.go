package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/piratecave/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LosePanel is the ebitenui overlay shown after the player is defeated.
type LosePanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnRetry func()

	titleFace  text.Face
	normalFace text.Face

	canvas *ebiten.Image
	drawOp *ebiten.DrawImageOptions
}

// NewLosePanel builds the panel. onRetry runs when the retry button is clicked.
func NewLosePanel(onRetry func()) (*LosePanel, error) {
	lp := &LosePanel{
		OnRetry: onRetry,
		drawOp:  &ebiten.DrawImageOptions{},
	}
	if err := lp.loadFonts(); err != nil {
		return nil, err
	}
	lp.buildUI()
	return lp, nil
}

func (lp *LosePanel) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	// Stored as text.Face interface for ebitenui compatibility
	lp.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	lp.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	return nil
}

func (lp *LosePanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Title, &lp.titleFace, &widget.LabelColor{
			Idle: cfg.GameOver.TitleColor,
		}),
	))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Hint, &lp.normalFace, &widget.LabelColor{
			Idle: cfg.GameOver.TextColor,
		}),
	))

	contentContainer.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 24),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Try again", &lp.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lp.OnRetry != nil {
				lp.OnRetry()
			}
		}),
	))

	rootContainer.AddChild(contentContainer)

	lp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 40, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{90, 50, 50, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 20, 20, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (lp *LosePanel) Update() {
	lp.UI.Update()
}

// Draw renders the panel at the given opacity.
func (lp *LosePanel) Draw(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if lp.canvas == nil || lp.canvas.Bounds().Dx() != w || lp.canvas.Bounds().Dy() != h {
		lp.canvas = ebiten.NewImage(w, h)
	}
	lp.canvas.Clear()
	lp.UI.Draw(lp.canvas)

	lp.drawOp.ColorScale.Reset()
	lp.drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(lp.canvas, lp.drawOp)
}
