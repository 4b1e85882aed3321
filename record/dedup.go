package record

import "slices"

// Duplicates returns every value that occurs more than once in ids, sorted and
// listed once. ids is left untouched.
func Duplicates(ids []string) []string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	var result []string
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			continue
		}
		if n := len(result); n > 0 && result[n-1] == sorted[i] {
			continue
		}
		result = append(result, sorted[i])
	}
	return result
}

// CheckBatch fails with ErrSelfDuplicate when batch repeats an identifier.
func CheckBatch(batch []string) error {
	if dups := Duplicates(batch); len(dups) > 0 {
		return &DuplicateError{Kind: ErrSelfDuplicate, Values: dups}
	}
	return nil
}

// CheckCollisions fails with ErrCollision when the combined batch and history
// hold any identifier twice. Duplicates already present in history count too.
func CheckCollisions(batch, history []string) error {
	combined := make([]string, 0, len(batch)+len(history))
	combined = append(combined, batch...)
	combined = append(combined, history...)
	if dups := Duplicates(combined); len(dups) > 0 {
		return &DuplicateError{Kind: ErrCollision, Values: dups}
	}
	return nil
}
