package engine

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/ctoscano/te-studio-poc/internal/assets"
	"github.com/ctoscano/te-studio-poc/internal/config"
	"github.com/ctoscano/te-studio-poc/internal/layout"
	"github.com/ctoscano/te-studio-poc/internal/logger"
	"github.com/ctoscano/te-studio-poc/internal/renderer"
	"github.com/ctoscano/te-studio-poc/internal/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

const sunRasterSize = 512

// Initialize to the center of the window
var lastX, lastY float64
var firstMouse bool = true

// Studio owns the window, the two sub-scenes and the UI. The selection is
// the only state shared between the landscape and design views; everything
// GPU-side belongs to whichever view is active.
type Studio struct {
	cfg     config.RenderConfig
	dataset *layout.Dataset
	state   *scene.State

	window            *glfw.Window
	EnableCameraInput bool

	landscapeCam *renderer.Camera
	designCam    *renderer.Camera

	textures *renderer.TextureCache
	terrain  *renderer.TerrainLoop
	sky      *renderer.Sky
	rig      *renderer.SpotRig
	chain    *renderer.Chain

	points      *renderer.PointCloud
	pointsDirty bool
	panelIDs    []string

	sun          *assets.SunFetcher
	terrainEpoch float64

	platform   *imguiPlatform
	uiRenderer *imguiRenderer
	ui         uiState
}

func NewStudio(cfg config.RenderConfig, dataset *layout.Dataset) *Studio {
	s := &Studio{
		cfg:               cfg,
		dataset:           dataset,
		state:             scene.NewState(float64(cfg.ScrollSpeed)),
		sun:               assets.NewSunFetcher(),
		EnableCameraInput: true,
	}
	s.ui.primaryText = s.state.Selection.Colors().Primary
	s.ui.edgeText = s.state.Selection.Colors().Edge
	s.panelIDs = panelIDs(dataset)
	return s
}

// Run opens the window and blocks in the render loop until it closes.
// Must be called from the main goroutine.
func (s *Studio) Run(x, y int) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(s.cfg.WindowWidth), int(s.cfg.WindowHeight), "TE Studio", nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	s.window = window
	window.SetPos(x, y)
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing opengl: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	logger.Log.Info("Window ready", zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))))

	imguiContext := imgui.CreateContext(nil)
	defer imguiContext.Destroy()
	io := imgui.CurrentIO()
	s.platform = newImguiPlatform(io, window)
	s.uiRenderer, err = newImguiRenderer(io)
	if err != nil {
		return fmt.Errorf("creating ui renderer: %w", err)
	}
	defer s.uiRenderer.Dispose()

	lastX, lastY = float64(s.cfg.WindowWidth/2), float64(s.cfg.WindowHeight/2)
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetCursorPosCallback(s.mouseCallback)

	s.buildScene()
	defer s.teardownScene()

	s.sun.StartFetch(context.Background(), s.cfg.SunURL, sunRasterSize)
	s.terrainEpoch = glfw.GetTime()

	s.renderLoop()
	return nil
}

func (s *Studio) buildScene() {
	renderW, renderH := s.renderSize()

	s.landscapeCam = renderer.NewLandscapeCamera(renderW, renderH)
	s.designCam = renderer.NewDesignCamera(renderW, renderH)

	s.textures = renderer.NewTextureCache()
	s.terrain = renderer.NewTerrainLoop(renderer.TerrainConfig{
		Segments:       s.cfg.TerrainSegments,
		DisplaceAmount: s.cfg.DisplaceAmount,
		GridCycles:     s.cfg.GridCycles,
		HeightMapPath:  s.cfg.HeightMapPath,
		MetalMapPath:   s.cfg.MetalnessMapPath,
	}, s.textures)
	s.sky = renderer.NewSky()
	s.rig = renderer.NewSpotRig()
	s.chain = renderer.NewChain(renderer.ChainConfig{
		RGBShiftAmount: s.cfg.RGBShiftAmount,
		Gamma:          s.cfg.Gamma,
		BloomIntensity: s.cfg.BloomIntensity,
		BloomThreshold: s.cfg.BloomThreshold,
		BloomRadius:    s.cfg.BloomRadius,
	}, renderW, renderH)
	s.rebuildPoints()
}

func (s *Studio) teardownScene() {
	if s.points != nil {
		s.points.Cleanup()
	}
	s.chain.Cleanup()
	s.sky.Cleanup()
	s.terrain.Cleanup()
	s.textures.Cleanup()
}

func (s *Studio) renderLoop() {
	lastTime := glfw.GetTime()
	lastW, lastH := int32(0), int32(0)

	for !s.window.ShouldClose() {
		now := glfw.GetTime()
		deltaTime := now - lastTime
		lastTime = now

		renderW, renderH := s.renderSize()
		fbW, fbH := s.window.GetFramebufferSize()
		if renderW != lastW || renderH != lastH {
			s.chain.Resize(renderW, renderH)
			aspect := float32(renderW) / float32(renderH)
			s.landscapeCam.SetAspectRatio(aspect)
			s.designCam.SetAspectRatio(aspect)
			lastW, lastH = renderW, renderH
		}

		if s.EnableCameraInput && s.state.Mode == scene.ModeDesign {
			s.designCam.ProcessKeyboard(s.window, float32(deltaTime))
		}

		if img := s.sun.Poll(); img != nil {
			s.sky.SetSilhouette(img)
			logger.Log.Info("Sun silhouette installed")
		}
		if s.pointsDirty {
			s.rebuildPoints()
		}

		switch s.state.Mode {
		case scene.ModeLandscape:
			s.state.Terrain.Advance(now - s.terrainEpoch)
			z0, z1 := s.state.Terrain.Offsets()
			s.terrain.SetOffsets(z0, z1)

			s.chain.Begin()
			vp := s.landscapeCam.GetViewProjection()
			s.sky.Draw(vp)
			s.terrain.Draw(vp, s.rig)
			s.chain.Run(int32(fbW), int32(fbH))
		case scene.ModeDesign:
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			gl.Viewport(0, 0, int32(fbW), int32(fbH))
			gl.ClearColor(0.01, 0.01, 0.03, 1.0)
			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

			colors := s.state.Selection.Colors()
			s.points.SetColors(colors.Primary, colors.Edge)
			s.points.Draw(s.designCam.GetViewProjection())
		}

		s.renderUI()

		s.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (s *Studio) renderUI() {
	s.platform.NewFrame()
	imgui.NewFrame()
	s.drawUI()
	imgui.Render()

	// The camera yields to the UI whenever a widget wants the input.
	io := imgui.CurrentIO()
	s.EnableCameraInput = !io.WantCaptureKeyboard() && !io.WantCaptureMouse() && !imgui.IsAnyItemActive()

	s.uiRenderer.Render(s.platform.DisplaySize(), s.platform.FramebufferSize(), imgui.RenderedDrawData())
}

// renderSize caps the off-screen resolution at MaxPixelRatio times the
// logical window size, so high-density displays do not quadruple the
// post-processing cost.
func (s *Studio) renderSize() (int32, int32) {
	fbW, fbH := s.window.GetFramebufferSize()
	winW, winH := s.window.GetSize()
	maxW := int(float32(winW) * s.cfg.MaxPixelRatio)
	maxH := int(float32(winH) * s.cfg.MaxPixelRatio)
	if fbW > maxW && maxW > 0 {
		fbW = maxW
	}
	if fbH > maxH && maxH > 0 {
		fbH = maxH
	}
	if fbW < 1 {
		fbW = 1
	}
	if fbH < 1 {
		fbH = 1
	}
	return int32(fbW), int32(fbH)
}

func (s *Studio) rebuildPoints() {
	if s.points != nil {
		s.points.Cleanup()
	}
	pts := layout.Sample(s.dataset, s.state.Selection.EnabledSet(), layout.Caps{
		MaxPanels:    s.cfg.MaxPanels,
		MaxPerPanel:  s.cfg.MaxPerPanel,
		SkipInterval: s.cfg.SkipInterval,
	}, layout.Transform{
		Scale:   s.cfg.LayoutScale,
		OffsetX: s.cfg.LayoutOffsetX,
		OffsetZ: s.cfg.LayoutOffsetZ,
	})
	s.points = renderer.NewPointCloud(pts, s.cfg.PanelPointSize, s.cfg.EdgePointSize)
	s.pointsDirty = false
}

func (s *Studio) toggleMode() {
	s.state.ToggleMode()
	s.terrainEpoch = glfw.GetTime()
	logger.Log.Info("Mode switched", zap.String("mode", s.state.Mode.String()))
}

// setDataset swaps the layout in place. The panel filter is reset since
// the new dataset may use different IDs; colors carry over.
func (s *Studio) setDataset(dataset *layout.Dataset) {
	s.dataset = dataset
	s.panelIDs = panelIDs(dataset)
	s.state.Selection.Clear()
	s.pointsDirty = true
}

func panelIDs(dataset *layout.Dataset) []string {
	ids := make([]string, 0, len(dataset.Panels))
	for _, p := range dataset.Panels {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// Mouse callback function
func (s *Studio) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if s.EnableCameraInput && s.state.Mode == scene.ModeDesign &&
		w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
			return
		}

		xoffset := xpos - lastX
		yoffset := lastY - ypos // Reversed since y-coordinates go from bottom to top
		lastX = xpos
		lastY = ypos

		s.designCam.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
	} else {
		firstMouse = true
	}
}
