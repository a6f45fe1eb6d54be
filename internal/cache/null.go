package cache

// Null is a store that never hits and discards all writes.
// It backs the --no-cache flag: every interrogation goes to UnrealBuildTool.
type Null struct{}

// NewNull creates a null store
func NewNull() *Null {
	return &Null{}
}

// GetCachedDataKey always reports a miss
func (n *Null) GetCachedDataKey(version, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// SetCachedDataKey discards the data
func (n *Null) SetCachedDataKey(version, key string, data []byte) error {
	return nil
}
