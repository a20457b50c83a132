package state

// LinkStore tracks what the receiver last reported about the ESP session.
type LinkStore interface {
	Connected() bool
	SetConnected(bool)
	LastError() error
	SetLastError(error)
}

type linkStore struct {
	connected bool
	lastErr   error
}

func NewLinkStore() LinkStore {
	return &linkStore{}
}

func (s *linkStore) Connected() bool {
	return s.connected
}

func (s *linkStore) SetConnected(connected bool) {
	s.connected = connected
}

func (s *linkStore) LastError() error {
	return s.lastErr
}

func (s *linkStore) SetLastError(err error) {
	s.lastErr = err
}
