package app

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"bloom-vcpkg/internal/core"
)

// requiredTools must be on PATH before anything is generated.
var requiredTools = []string{"git"}

// CheckCapabilities verifies the external tools generation depends on.
func CheckCapabilities(lookPath func(string) (string, error)) error {
	if lookPath == nil {
		return nil
	}
	for _, tool := range requiredTools {
		if _, err := lookPath(tool); err != nil {
			return core.WrapError(core.KindExternalTool, errbuilder.CodeFailedPrecondition,
				tool+" was not detected, please install it", err)
		}
	}
	return nil
}
