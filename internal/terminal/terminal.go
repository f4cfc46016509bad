package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"stairwalk/internal/commands"
	"stairwalk/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// maxLinesOnScreen is how many log lines are drawn above the input bar.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

// ToggleKey opens and closes the console.
const ToggleKey = rl.KeyGrave

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the debug console at the bottom of the screen. While open it captures the
// keyboard, so the walk loop ignores arrow keys. Each submitted line is logged and run
// through the command registry; errors are logged.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	// OnToggle, if set, runs after the console opens or closes.
	OnToggle func(open bool)
}

// New returns a closed Terminal.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles the toggle key and, when open, typing, backspace, paste and enter.
// Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(ToggleKey) {
		t.open = !t.open
		// Swallow the backquote character typed by the toggle.
		for rl.GetCharPressed() != 0 {
		}
		if t.OnToggle != nil {
			t.OnToggle(t.open)
		}
		return
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Submit logs line and runs it as a command. Blank lines are ignored.
func (t *Terminal) Submit(line string) {
	args, ok := commands.Parse(line)
	if !ok {
		return
	}
	t.log.Log(prompt + line)
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Draw draws the input bar and recent log lines when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	chatHeight := int32(maxLinesOnScreen * lineHeight)
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight, chatY = barY, 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, chatY, screenW, chatHeight, termChatBgColor)
	}
	lines := t.log.Lines()
	start := max(0, len(lines)-maxLinesOnScreen)
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		y := chatY + int32((i-start)*lineHeight) + padding
		rl.DrawText(line, padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, termBarColor)
	rl.DrawRectangle(0, barY, screenW, 1, termLineColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
