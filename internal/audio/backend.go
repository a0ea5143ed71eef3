package audio

// Backend plays pre-rendered sounds on some output device
type Backend interface {
	// Play starts a one-shot sound, restarting it if already playing
	Play(s Sound) error
	// Loop starts a sound that repeats until Stop
	Loop(s Sound) error
	Stop(s Sound)
	SetVolume(v float64)
	Close() error
}

// NullBackend discards everything. Used with -mute and in headless runs.
type NullBackend struct{}

func (NullBackend) Play(Sound) error  { return nil }
func (NullBackend) Loop(Sound) error  { return nil }
func (NullBackend) Stop(Sound)        {}
func (NullBackend) SetVolume(float64) {}
func (NullBackend) Close() error      { return nil }
