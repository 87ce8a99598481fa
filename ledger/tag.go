// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import "github.com/pkg/errors"

// Tag encodes the record kind in the first byte of every region. A
// record may only be read as the type its tag declares. A tag changes
// exactly twice in a record's life: Uninitialized to a concrete kind on
// creation, and a concrete kind to Deleted on retirement.
type Tag uint8

const (
	TagUninitialized Tag = iota
	TagStakePool
	TagStakeAccount
	TagCentralState
	TagDeleted
)

// ErrDataTypeMismatch is returned when a record's tag does not declare
// the type it is being read as.
var ErrDataTypeMismatch = errors.New("record data type mismatch")

func (t Tag) String() string {
	switch t {
	case TagUninitialized:
		return "uninitialized"
	case TagStakePool:
		return "stake-pool"
	case TagStakeAccount:
		return "stake-account"
	case TagCentralState:
		return "central-state"
	case TagDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// TagOf reports the tag of raw record data. Empty data is an
// uninitialized record.
func TagOf(data []byte) Tag {
	if len(data) == 0 {
		return TagUninitialized
	}
	return Tag(data[0])
}

// MarkDeleted returns a copy of raw record data with its tag retired.
// A retired record keeps its bytes but can no longer be read as any
// concrete kind.
func MarkDeleted(data []byte) []byte {
	retired := make([]byte, len(data))
	copy(retired, data)
	if len(retired) > 0 {
		retired[0] = byte(TagDeleted)
	}
	return retired
}

func checkTag(data []byte, want Tag) error {
	if got := TagOf(data); got != want {
		return errors.Wrapf(ErrDataTypeMismatch, "want %v, got %v", want, got)
	}
	return nil
}
