// SPDX-License-Identifier: MIT

package familygen

import (
	"fmt"
	"strconv"
)

// IDFn generates a subset descriptor from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// PrefixIDFn returns an IDFn producing prefix followed by the decimal index,
// e.g. PrefixIDFn("Gr ")(3) == "Gr 3".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn returns the Excel-style column name for idx, e.g. 0→"A",
// 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}

	return string(buf)
}
