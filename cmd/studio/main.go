package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ctoscano/te-studio-poc/internal/config"
	"github.com/ctoscano/te-studio-poc/internal/engine"
	"github.com/ctoscano/te-studio-poc/internal/layout"
	"github.com/ctoscano/te-studio-poc/internal/logger"
	"go.uber.org/zap"
)

func main() {
	runtime.LockOSThread()
	logger.Init()
	logger.Log.Info("TE Studio starting...")

	cfg := config.Load(findAsset("studio.json"))
	dataset := loadDataset(findAsset("layout.json"))

	studio := engine.NewStudio(cfg, dataset)
	if err := studio.Run(50, 50); err != nil {
		logger.Log.Fatal("Studio exited", zap.Error(err))
	}
}

func loadDataset(path string) *layout.Dataset {
	if path == "" {
		logger.Log.Warn("No layout.json found, starting with an empty layout")
		return &layout.Dataset{}
	}
	dataset, err := layout.Load(path)
	if err != nil {
		logger.Log.Error("Could not load layout", zap.String("path", path), zap.Error(err))
		return &layout.Dataset{}
	}
	return dataset
}

func findAsset(name string) string {
	exePath, _ := os.Executable()
	exeDir := filepath.Dir(exePath)

	paths := []string{
		filepath.Join(exeDir, "assets", name),
		filepath.Join(exeDir, name),
		filepath.Join("assets", name),
		name,
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
