package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidPageConfigs indicates invalid viewer page settings
	// (for example, a missing page source).
	ErrInvalidPageConfigs = errors.New("invalid page configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage mode or missing
	// database settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSealerConfigs indicates missing or malformed sealer settings
	// (for example, empty password or non-base64 salt).
	ErrInvalidSealerConfigs = errors.New("invalid sealer configuration")
)
