package mempool

import "github.com/pkg/errors"

var (
	// ErrInvalidSize reports an allocation request that rounds to zero bytes.
	ErrInvalidSize = errors.New("requested size rounds to zero")

	// ErrOutOfMemory reports that no FREE block in the chain can satisfy
	// the request. The caller may retry after releasing other handles.
	ErrOutOfMemory = errors.New("no free block large enough")

	// ErrInvalidPointer reports a release target that does not resolve to
	// an allocated block inside the pool. The call performs no mutation.
	ErrInvalidPointer = errors.New("pointer outside memory pool")
)
