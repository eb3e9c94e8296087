package documents

// Renderer turns a render input into a finished document buffer. One
// implementation per output format. Implementations must be pure and
// stateless: no I/O, no retained state between calls, safe for concurrent
// use. Missing optional fields never fail a render; only internal
// generation errors do.
type Renderer interface {
	Render(doc Document, opts RenderOptions) ([]byte, error)
}
