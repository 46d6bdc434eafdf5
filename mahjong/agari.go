package mahjong

// IsCompleteSevenPairs 七对子: 所有非零项都是2且总数14
func IsCompleteSevenPairs(h Hand34) bool {
	for _, c := range h {
		if c != 0 && c != 2 {
			return false
		}
	}
	return h.Count() == TileCountWinner
}

// IsCompleteThirteenOrphans 国士无双: 13种幺九齐全且合计14张
func IsCompleteThirteenOrphans(h Hand34) bool {
	n := 0
	for _, k := range TerminalsAndHonors {
		if h[k] == 0 {
			return false
		}
		n += int(h[k])
	}
	return n == TileCountWinner
}

// IsCompleteStandard 一般形: 四面子一雀头(或短手牌的等价形)
func IsCompleteStandard(h Hand34) bool {
	parts := h.SliceBySuit()
	pairGroups := 0
	for _, part := range parts {
		switch sum8(part) % 3 {
		case 1:
			return false
		case 2:
			pairGroups++
		}
	}
	if pairGroups != 1 {
		return false
	}
	for c, part := range parts {
		if !groupReducible(part, EColor(c) == ColorHonor) {
			return false
		}
	}
	return true
}

// IsComplete 三种和了形任意其一
func IsComplete(h Hand34) bool {
	return IsCompleteSevenPairs(h) || IsCompleteThirteenOrphans(h) || IsCompleteStandard(h)
}

// groupReducible 单一花色能否拆成面子(+雀头), 在副本上操作
func groupReducible(part []int8, honor bool) bool {
	t := make([]int8, len(part))
	copy(t, part)
	return reduceGroup(t, honor)
}

func reduceGroup(t []int8, honor bool) bool {
	n := sum8(t)
	if n == 0 {
		return true
	}

	if n%3 == 2 {
		for i := range t {
			if t[i] < 2 {
				continue
			}
			t[i] -= 2
			if groupReducible(t, honor) {
				return true
			}
			t[i] += 2
		}
		return false
	}

	for i := range t {
		switch t[i] {
		case 0:
			continue
		case 3:
			t[i] = 0
			continue
		}
		if honor || i >= 7 {
			return false
		}
		if t[i] == 4 {
			t[i] -= 3
		}
		t[i+1] -= t[i]
		t[i+2] -= t[i]
		if t[i+1] < 0 || t[i+2] < 0 {
			return false
		}
		t[i] = 0
	}
	return true
}
