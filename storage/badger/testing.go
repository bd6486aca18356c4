package badger

// NewMemoryRepository creates an in-memory DocumentRepository for testing.
// The caller owns the repository and must Close it.
func NewMemoryRepository() (*DocumentRepository, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return NewDocumentRepository(backend), nil
}
