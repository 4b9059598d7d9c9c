package huffile

// FrequencyTable maps every byte value to its occurrence count. All
// 256 slots are always present; absent bytes simply hold zero. Counts
// are 32 bits wide to match the 4-byte slots in the container format.
type FrequencyTable [256]uint32

// countBytes builds the frequency table for data in a single pass.
func countBytes(data []byte) FrequencyTable {
	var freqs FrequencyTable
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}

// Total returns the sum of all counts, which equals the length of the
// input the table was built from.
func (t *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range t {
		total += uint64(count)
	}
	return total
}
