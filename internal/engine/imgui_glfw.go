package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// imguiPlatform binds imgui input to an existing GLFW window. The window
// and its GL context are owned by the studio; the platform only installs
// callbacks and feeds the IO state each frame.
type imguiPlatform struct {
	io               imgui.IO
	window           *glfw.Window
	time             float64
	mouseJustPressed [3]bool
}

func newImguiPlatform(io imgui.IO, window *glfw.Window) *imguiPlatform {
	p := &imguiPlatform{io: io, window: window}
	p.setKeyMapping()
	p.installCallbacks()
	return p
}

func (p *imguiPlatform) DisplaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

func (p *imguiPlatform) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame marks the begin of a render pass, feeding display size, timing
// and mouse state to imgui.
func (p *imguiPlatform) NewFrame() {
	displaySize := p.DisplaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	currentTime := glfw.GetTime()
	if p.time > 0 {
		p.io.SetDeltaTime(float32(currentTime - p.time))
	}
	p.time = currentTime

	if p.window.GetAttrib(glfw.Focused) != 0 {
		x, y := p.window.GetCursorPos()
		p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		p.io.SetMousePosition(imgui.Vec2{X: -1, Y: -1})
	}
	for i := 0; i < len(p.mouseJustPressed); i++ {
		down := p.mouseJustPressed[i] || (p.window.GetMouseButton(glfwButtonIDByIndex[i]) == glfw.Press)
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}
}

func (p *imguiPlatform) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyTab:        int(glfw.KeyTab),
		imgui.KeyLeftArrow:  int(glfw.KeyLeft),
		imgui.KeyRightArrow: int(glfw.KeyRight),
		imgui.KeyUpArrow:    int(glfw.KeyUp),
		imgui.KeyDownArrow:  int(glfw.KeyDown),
		imgui.KeyPageUp:     int(glfw.KeyPageUp),
		imgui.KeyPageDown:   int(glfw.KeyPageDown),
		imgui.KeyHome:       int(glfw.KeyHome),
		imgui.KeyEnd:        int(glfw.KeyEnd),
		imgui.KeyInsert:     int(glfw.KeyInsert),
		imgui.KeyDelete:     int(glfw.KeyDelete),
		imgui.KeyBackspace:  int(glfw.KeyBackspace),
		imgui.KeySpace:      int(glfw.KeySpace),
		imgui.KeyEnter:      int(glfw.KeyEnter),
		imgui.KeyEscape:     int(glfw.KeyEscape),
		imgui.KeyA:          int(glfw.KeyA),
		imgui.KeyC:          int(glfw.KeyC),
		imgui.KeyV:          int(glfw.KeyV),
		imgui.KeyX:          int(glfw.KeyX),
		imgui.KeyY:          int(glfw.KeyY),
		imgui.KeyZ:          int(glfw.KeyZ),
	}
	for imguiKey, nativeKey := range keys {
		p.io.KeyMap(imguiKey, nativeKey)
	}
}

func (p *imguiPlatform) installCallbacks() {
	p.window.SetMouseButtonCallback(p.mouseButtonChange)
	p.window.SetScrollCallback(p.mouseScrollChange)
	p.window.SetKeyCallback(p.keyChange)
	p.window.SetCharCallback(p.charChange)
}

var glfwButtonIndexByID = map[glfw.MouseButton]int{
	glfw.MouseButton1: 0,
	glfw.MouseButton2: 1,
	glfw.MouseButton3: 2,
}

var glfwButtonIDByIndex = map[int]glfw.MouseButton{
	0: glfw.MouseButton1,
	1: glfw.MouseButton2,
	2: glfw.MouseButton3,
}

func (p *imguiPlatform) mouseButtonChange(window *glfw.Window, rawButton glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	buttonIndex, known := glfwButtonIndexByID[rawButton]
	if known && (action == glfw.Press) {
		p.mouseJustPressed[buttonIndex] = true
	}
}

func (p *imguiPlatform) mouseScrollChange(window *glfw.Window, x, y float64) {
	p.io.AddMouseWheelDelta(float32(x), float32(y))
}

func (p *imguiPlatform) keyChange(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press {
		p.io.KeyPress(int(key))
	}
	if action == glfw.Release {
		p.io.KeyRelease(int(key))
	}

	// Modifiers are not reliable across systems
	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (p *imguiPlatform) charChange(window *glfw.Window, char rune) {
	p.io.AddInputCharacters(string(char))
}
