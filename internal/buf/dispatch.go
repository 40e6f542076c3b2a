package buf

import "github.com/joshuapare/numkit/pkg/types"

// Select returns be when e resolves to big endian and le otherwise. Native is
// resolved here, at the call boundary, from the build target's byte order.
func Select[F any](e types.Endianness, be, le F) F {
	if e.Resolve() == types.Big {
		return be
	}
	return le
}
