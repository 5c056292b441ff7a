package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// tagNamePlaceholders are substituted, in this order, into
// <Package>_<Version>-<Inc>_<Distribution>.
var tagNamePlaceholders = []string{"Package", "Version", "Inc", "Distribution"}

// SynthesizeTagName composes the release tag
// <packageManager>/<Package>_<Version>-<Inc>_<Distribution>. Values are
// used verbatim.
func SynthesizeTagName(packageManager string, fields map[string]string) (string, error) {
	values := make([]string, 0, len(tagNamePlaceholders))
	for _, name := range tagNamePlaceholders {
		value, ok := fields[name]
		if !ok {
			return "", NewError(KindMissingField, errbuilder.CodeInvalidArgument,
				fmt.Sprintf("tag name field %s is missing", name))
		}
		values = append(values, value)
	}
	return packageManager + "/" + fmt.Sprintf("%s_%s-%s_%s", values[0], values[1], values[2], values[3]), nil
}
