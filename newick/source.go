package newick

import (
	"fmt"

	"golang.org/x/exp/mmap"

	"github.com/dendrogo/dendro/core"
)

// DecodeFile parses a Newick file through a memory mapping, so even
// multi-gigabyte trees avoid a line-oriented read path. The mapping is
// released on every exit path; resource errors propagate unwrapped and
// are never retried.
func DecodeFile(path string, opts ...Option) (core.Node, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("newick: mapping %s: %w", path, err)
	}
	defer r.Close()

	size := r.Len()
	if size == 0 {
		return nil, ErrEmptyInput
	}
	data := make([]byte, size)
	if _, err = r.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("newick: reading %s: %w", path, err)
	}

	return Decode(data, opts...)
}
