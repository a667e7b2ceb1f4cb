package objects

// NewBlob builds a blob Object wrapping the raw file content. A blob
// carries no metadata beyond its bytes.
func NewBlob(content []byte) *Object {
	return New(TypeBlob, content)
}
