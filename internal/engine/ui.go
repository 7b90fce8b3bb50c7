package engine

import (
	"github.com/ctoscano/te-studio-poc/internal/layout"
	"github.com/ctoscano/te-studio-poc/internal/logger"
	"github.com/ctoscano/te-studio-poc/internal/scene"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"
)

// uiState holds the text buffers behind the color input fields. The
// buffers are pushed into the selection on every edit, so the selection
// always carries the raw strings the user typed.
type uiState struct {
	primaryText string
	edgeText    string
}

func (s *Studio) drawUI() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 12, Y: 12}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 300, Y: 480}, imgui.ConditionFirstUseEver)
	imgui.Begin("TE Studio")

	imgui.Text("Mode: " + s.state.Mode.String())
	label := "Enter design view"
	if s.state.Mode == scene.ModeDesign {
		label = "Enter landscape view"
	}
	if imgui.Button(label) {
		s.toggleMode()
	}

	if s.state.Mode == scene.ModeDesign {
		imgui.Separator()
		if imgui.InputText("Panel color", &s.ui.primaryText) {
			s.state.Selection.SetPrimaryColor(s.ui.primaryText)
		}
		if imgui.InputText("Edge color", &s.ui.edgeText) {
			s.state.Selection.SetEdgeColor(s.ui.edgeText)
		}

		imgui.Separator()
		if imgui.Button("Show all") {
			s.state.Selection.Clear()
			s.pointsDirty = true
		}
		imgui.SameLine()
		if imgui.Button("Load layout...") {
			s.loadLayoutDialog()
		}

		imgui.Separator()
		imgui.Text("Panels")
		for _, id := range s.panelIDs {
			checked := s.state.Selection.Visible(id)
			if imgui.Checkbox(id, &checked) {
				s.state.Selection.Toggle(id)
				s.pointsDirty = true
			}
		}
	}

	imgui.End()
}

// loadLayoutDialog swaps in a layout file chosen by the user. The picker
// blocks the render loop, which is fine for a manual action.
func (s *Studio) loadLayoutDialog() {
	path, err := dialog.File().Filter("Layout JSON", "json").Load()
	if err != nil {
		// Cancel is the common path here, nothing to report
		return
	}
	dataset, err := layout.Load(path)
	if err != nil {
		logger.Log.Error("Could not load layout", zap.String("path", path), zap.Error(err))
		return
	}
	s.setDataset(dataset)
	logger.Log.Info("Layout loaded", zap.String("path", path),
		zap.Int("panels", len(dataset.Panels)), zap.Int("edges", len(dataset.Edges)))
}
