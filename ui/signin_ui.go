package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	inputIdle     = color.RGBA{50, 50, 70, 255}
	inputDisabled = color.RGBA{40, 40, 50, 255}
	labelColor    = color.RGBA{200, 200, 200, 255}
	statusColor   = color.RGBA{255, 200, 100, 255}
)

// SignInUI is the name and password form shown before the main menu.
type SignInUI struct {
	UI *ebitenui.UI

	OnSubmit func(name, password string)
	OnLeave  func()

	nameInput     *widget.TextInput
	passwordInput *widget.TextInput
	statusLabel   *widget.Label
	submitBtn     *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewSignInUI(title, lastPlayer string, onSubmit func(name, password string), onLeave func()) *SignInUI {
	ui := &SignInUI{
		OnSubmit: onSubmit,
		OnLeave:  onLeave,
	}
	ui.loadFonts()
	ui.buildUI(title)
	if lastPlayer != "" {
		ui.nameInput.SetText(lastPlayer)
	}
	return ui
}

func (ui *SignInUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 40}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 20}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (ui *SignInUI) buildUI(title string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.nameInput = ui.newInput("Name", false)
	contentContainer.AddChild(ui.labeledRow("Name:     ", ui.nameInput))

	ui.passwordInput = ui.newInput("Password", true)
	contentContainer.AddChild(ui.labeledRow("Password:", ui.passwordInput))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: statusColor,
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SignInUI) newInput(placeholder string, secure bool) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 30)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(inputIdle),
			Disabled: image.NewNineSliceColor(inputDisabled),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Secure(secure),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(6)),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			ui.submit()
		}),
	)
}

func (ui *SignInUI) labeledRow(label string, input *widget.TextInput) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.normalFace, &widget.LabelColor{
			Idle: labelColor,
		}),
	))
	row.AddChild(input)
	return row
}

func (ui *SignInUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	ui.submitBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("SIGN IN/UP", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.submit()
		}),
	)
	container.AddChild(ui.submitBtn)

	leaveButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Leave", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnLeave != nil {
				ui.OnLeave()
			}
		}),
	)
	container.AddChild(leaveButton)

	return container
}

func (ui *SignInUI) submit() {
	if ui.OnSubmit == nil || ui.submitBtn.GetWidget().Disabled {
		return
	}
	ui.OnSubmit(ui.nameInput.GetText(), ui.passwordInput.GetText())
}

func (ui *SignInUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

// SetBusy disables the form while a sign-in is being checked.
func (ui *SignInUI) SetBusy(busy bool) {
	if ui.submitBtn != nil {
		ui.submitBtn.GetWidget().Disabled = busy
	}
}

// ClearPassword empties the password field after a rejected attempt.
func (ui *SignInUI) ClearPassword() {
	ui.passwordInput.SetText("")
}

func (ui *SignInUI) Update() {
	ui.UI.Update()
}
