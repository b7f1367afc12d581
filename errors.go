package inputmask

import "errors"

// ErrInvalidDecimalPlaces is returned when a mask is configured with a
// negative or non-integer decimal place count.
var ErrInvalidDecimalPlaces = errors.New("inputmask: invalid decimal places")

// ErrUnknownPreset indicates that no preset was registered under a name.
var ErrUnknownPreset = errors.New("inputmask: unknown preset")

// ErrNoPresetPaths is returned by PresetLoader.Load when no files were configured.
var ErrNoPresetPaths = errors.New("inputmask: no preset paths configured")

// ErrUnsupportedPresetFormat marks preset files with an unknown extension.
var ErrUnsupportedPresetFormat = errors.New("inputmask: unsupported preset format")

// ErrValueOutOfRange marks a typed digit run that does not fit a float64.
var ErrValueOutOfRange = errors.New("inputmask: value out of range")
