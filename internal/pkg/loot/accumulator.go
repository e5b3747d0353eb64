package loot

// Accumulate folds a reported study duration into the stored remainder and
// returns the new remainder plus the number of drop credits earned. The
// remainder is always in [0, DropQuantumSeconds).
func Accumulate(accumulated, studied int64) (int64, int, error) {
	if studied < 0 {
		return 0, 0, ErrInvalidInput
	}

	total := accumulated + studied
	drops := total / DropQuantumSeconds
	return total - drops*DropQuantumSeconds, int(drops), nil
}
