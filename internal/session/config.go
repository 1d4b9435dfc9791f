package session

// DefaultMaxMessages bounds how many server messages one probe session
// consumes before reporting. Enough for the registry burst plus the
// sync callback on typical compositors.
const DefaultMaxMessages = 20

// Config defines per-session read loop bounds.
type Config struct {
	MaxMessages int
}

func DefaultConfig() Config {
	return Config{MaxMessages: DefaultMaxMessages}
}

// WithDefaults fills unset fields with contract defaults.
func (c Config) WithDefaults() Config {
	if c.MaxMessages <= 0 {
		c.MaxMessages = DefaultMaxMessages
	}
	return c
}
