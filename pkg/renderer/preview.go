package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/foglab/go-volumetric-raymarcher/pkg/log"
)

const (
	previewMouseSensitivity = 0.003
	previewMoveSpeed        = 5.0
)

// Preview is an interactive window flying the camera through the medium.
// Frames are rendered on the CPU and blitted to the window each
// iteration. Callers must run it from the main OS thread.
type Preview struct {
	renderer   *FrameRenderer
	camera     *Camera
	controller *CameraController
	width      int
	height     int
	logger     log.Logger

	// opengl handles
	window    *glfw.Window
	texFbo    uint32
	fbTexture uint32

	lastCursorX float64
	lastCursorY float64
	cursorSeen  bool
}

// NewPreview creates an interactive preview of the given scene.
func NewPreview(scene Scene, width, height int, options RenderOptions, logger log.Logger) (*Preview, error) {
	fr, err := NewFrameRenderer(scene, width, height, options, logger)
	if err != nil {
		return nil, err
	}

	p := &Preview{
		renderer:   fr,
		camera:     NewCamera(scene.GetCameraConfig()),
		controller: NewCameraController(previewMoveSpeed, previewMouseSensitivity),
		width:      width,
		height:     height,
		logger:     logger,
	}

	if err := p.initGL(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *Preview) initGL() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("preview: failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(p.width, p.height, "volumetric raymarcher", nil, nil)
	if err != nil {
		return fmt.Errorf("preview: could not create window: %w", err)
	}
	p.window = window
	p.window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("preview: could not init opengl: %w", err)
	}

	// Texture receiving the CPU-rendered frame.
	gl.GenTextures(1, &p.fbTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.fbTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(p.width), int32(p.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Attach it to a read framebuffer so frames can be blitted out.
	gl.GenFramebuffers(1, &p.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.fbTexture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	p.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	p.window.SetKeyCallback(p.onKeyEvent)
	p.window.SetCursorPosCallback(p.onCursorPosEvent)
	p.window.SetScrollCallback(p.onScrollEvent)

	return nil
}

// Run renders and displays frames until the window is closed.
func (p *Preview) Run() error {
	if p.window == nil {
		return ErrWindowClosed
	}

	prevTime := glfw.GetTime()
	for !p.window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		delta := now - prevTime
		prevTime = now

		p.controller.Update(p.camera, delta)

		fs := p.camera.FrameState(uint32(p.width), uint32(p.height), now, delta)
		img, _ := p.renderer.RenderFrame(fs)

		// Upload the frame and blit it to the window, flipping rows
		// since image.RGBA stores the top row first.
		gl.BindTexture(gl.TEXTURE_2D, p.fbTexture)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.texFbo)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(p.width), int32(p.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		gl.BlitFramebuffer(0, int32(p.height), int32(p.width), 0,
			0, 0, int32(p.width), int32(p.height), gl.COLOR_BUFFER_BIT, gl.NEAREST)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

		p.window.SwapBuffers()
	}
	return nil
}

// Close releases the window and terminates glfw.
func (p *Preview) Close() {
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	glfw.Terminate()
}

func (p *Preview) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action != glfw.Release

	switch key {
	case glfw.KeyEscape:
		p.window.SetShouldClose(true)
	case glfw.KeyA:
		p.controller.Horizontal.SetNegative(pressed)
	case glfw.KeyD:
		p.controller.Horizontal.SetPositive(pressed)
	case glfw.KeyS:
		p.controller.Vertical.SetNegative(pressed)
	case glfw.KeyW:
		p.controller.Vertical.SetPositive(pressed)
	}
}

func (p *Preview) onCursorPosEvent(w *glfw.Window, xPos, yPos float64) {
	if !p.cursorSeen {
		p.lastCursorX, p.lastCursorY = xPos, yPos
		p.cursorSeen = true
		return
	}

	p.controller.AddCursorDelta(xPos-p.lastCursorX, yPos-p.lastCursorY)
	p.lastCursorX, p.lastCursorY = xPos, yPos
}

func (p *Preview) onScrollEvent(w *glfw.Window, xOff, yOff float64) {
	p.controller.AdjustSpeed(yOff)
}
