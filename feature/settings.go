package feature

// NoSettings is the settings value for chipsets without any per-strip
// configuration. It takes no buffer space.
type NoSettings struct{}

// noSettings decorates a layout with an empty settings region.
type noSettings struct{}

func (noSettings) SettingsSize() int {
	return 0
}

func (noSettings) ApplySettings(data []byte, settings NoSettings) {
}

// Pixels returns data unchanged: there's no settings region to skip.
func (noSettings) Pixels(data []byte) []byte {
	return data
}

type Elements3NoSettings struct {
	Elements3
	noSettings
}

type Elements4NoSettings struct {
	Elements4
	noSettings
}

type Elements6NoSettings struct {
	Elements6
	noSettings
}

type Elements8NoSettings struct {
	Elements8
	noSettings
}
