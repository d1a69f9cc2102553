// Package constraints provides generic type constraints shared by the parsing packages.
package constraints

// Byteseq is satisfied by string-like and byte-slice-like input buffers.
type Byteseq interface {
	~string | ~[]byte
}
