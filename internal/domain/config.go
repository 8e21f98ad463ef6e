package domain

// Config mirrors ~/.keyclip/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Database            DatabaseSettings  `yaml:"database"`
	Clipboard           ClipboardSettings `yaml:"clipboard"`
}

// DatabaseSettings locates the credential store.
type DatabaseSettings struct {
	Path string `yaml:"path"`
}

// ClipboardSettings configures the copy helper.
type ClipboardSettings struct {
	// Tool pins a specific helper binary (pbcopy, xclip, wl-copy).
	// Empty means auto-detect for the platform.
	Tool string `yaml:"tool"`
}
