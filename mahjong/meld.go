package mahjong

import "slices"

// IsProperOpenSet 副露是否成立: 2-4张同种, 或同一花色连续三种
func IsProperOpenSet(kinds []Kind) bool {
	if len(kinds) < 2 || len(kinds) > 4 {
		return false
	}
	for _, k := range kinds {
		if !k.IsValid() {
			return false
		}
	}

	same := true
	for _, k := range kinds[1:] {
		if k != kinds[0] {
			same = false
			break
		}
	}
	if same {
		return true
	}

	if len(kinds) != 3 {
		return false
	}
	sorted := slices.Clone(kinds)
	slices.Sort(sorted)
	if !sorted[0].IsSuit() || sorted[0].Color() != sorted[2].Color() {
		return false
	}
	return sorted[1] == sorted[0]+1 && sorted[2] == sorted[1]+1
}
