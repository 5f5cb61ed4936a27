package chain

import "github.com/chaintope/tapyrus-spv/er"

// Err is the error family for this package's chain data model errors:
// OrphanHeader and StoreConsistency.
var Err = er.NewErrorType("chain.Err")

var (
	// ErrOrphanHeader is returned by Chain.ConnectBlockHeader when the
	// header's prev_blockhash is unknown to the store. Per-header,
	// non-fatal inside a download batch.
	ErrOrphanHeader = Err.CodeWithDetail("ErrOrphanHeader",
		"parent of header not found in chain store")

	// ErrStoreConsistency is returned when an invariant of the persisted
	// chain is violated, e.g. a record references a predecessor that the
	// store no longer has. Fatal; callers should abort.
	ErrStoreConsistency = Err.CodeWithDetail("ErrStoreConsistency",
		"chain store invariant violated")
)
