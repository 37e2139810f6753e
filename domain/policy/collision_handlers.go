package policy

import (
	"log/slog"

	"github.com/reglet-dev/scriptbox/domain/ports"
)

// Ensure implementations satisfy the interface.
var _ ports.CollisionHandler = (*SlogCollisionHandler)(nil)
var _ ports.CollisionHandler = (*NopCollisionHandler)(nil)

// SlogCollisionHandler logs mangles and skips. A nil Logger uses slog.Default().
type SlogCollisionHandler struct {
	Logger *slog.Logger
}

func (h *SlogCollisionHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *SlogCollisionHandler) OnMangle(runtime, original, mangled string) {
	h.logger().Info("reserved name mangled", "runtime", runtime, "name", original, "script_name", mangled)
}

func (h *SlogCollisionHandler) OnSkip(runtime, name string) {
	h.logger().Warn("reserved name skipped", "runtime", runtime, "name", name)
}

// NopCollisionHandler does nothing.
type NopCollisionHandler struct{}

func (h *NopCollisionHandler) OnMangle(runtime, original, mangled string) {}

func (h *NopCollisionHandler) OnSkip(runtime, name string) {}
