// SPDX-License-Identifier: MIT

package familygen

const methodWindows = "Windows"

// Windows returns the family of all windows {i, ..., i+width-1} for
// i = 0..items-width. Every item is covered and the minimum cover has
// ceil(items/width) subsets, which makes it a handy oracle for benchmarks.
func Windows(items, width int, opts ...Option) (Instance, error) {
	cfg := newConfig(opts...)
	if width < 1 {
		return Instance{}, genErrorf(methodWindows, ErrTooFewItems, "width=%d < 1", width)
	}
	if items < width {
		return Instance{}, genErrorf(methodWindows, ErrTooFewItems, "items=%d < width=%d", items, width)
	}

	in := Instance{
		Universe: universe(items),
		Subsets:  make([]setcoverSubset, 0, items-width+1),
	}
	for start := 0; start+width <= items; start++ {
		w := make([]int, width)
		for k := range w {
			w[k] = start + k
		}
		in.Subsets = append(in.Subsets, setcoverSubset{Descriptor: cfg.idFn(start), Items: w})
	}

	return in, nil
}
