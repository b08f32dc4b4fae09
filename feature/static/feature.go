package static

import (
	"fmt"
	"os"
	"time"

	"lab-launcher/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature serves the serving root byte for byte.
type Feature struct {
	root   string
	logger *zap.Logger
}

// NewFeature creates the static feature rooted at root.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{root: root, logger: logger}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether a serving root is set.
func (f *Feature) IsEnabled() bool {
	return f.root != ""
}

// Load mounts the file server at "/".
// Missing paths fall through the handler and end as fiber's 404.
func (f *Feature) Load(app fiber.Router) error {
	info, err := os.Stat(f.root)
	if err != nil {
		return fmt.Errorf("failed to stat serving root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("serving root %s is not a directory", f.root)
	}

	app.Static("/", f.root, fiber.Static{
		Index:         server.IndexFile,
		Browse:        true,
		ByteRange:     true,
		CacheDuration: time.Second,
	})

	f.logger.Debug("Static feature loaded", zap.String("root", f.root))
	return nil
}
