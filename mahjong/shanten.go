package mahjong

// ShantenResult 各和了形的向听数
type ShantenResult struct {
	Standard        int
	SevenPairs      int
	ThirteenOrphans int
	Min             int
}

// Shape 取得最小向听数的和了形, 并列时依次优先一般形 七对子 国士
func (r ShantenResult) Shape() EShape {
	switch r.Min {
	case r.Standard:
		return ShapeStandard
	case r.SevenPairs:
		return ShapeSevenPairs
	case r.ThirteenOrphans:
		return ShapeThirteenOrphans
	}
	return ShapeNone
}

// Shanten 向听数, -1 为和了
func Shanten(h Hand34) int {
	return DefaultAnalyzer.Shanten(h)
}

// ShantenDetail 分和了形的向听数
func ShantenDetail(h Hand34) ShantenResult {
	return DefaultAnalyzer.ShantenDetail(h)
}

func (a *Analyzer) Shanten(h Hand34) int {
	return a.ShantenDetail(h).Min
}

func (a *Analyzer) ShantenDetail(h Hand34) ShantenResult {
	n := h.validate()
	r := ShantenResult{
		Standard:        shantenStandard(h, n),
		SevenPairs:      noShape,
		ThirteenOrphans: noShape,
	}
	r.Min = r.Standard
	if a.rule.SevenPairs {
		r.SevenPairs = ShantenSevenPairs(h)
		r.Min = min(r.Min, r.SevenPairs)
	}
	if a.rule.ThirteenOrphans {
		r.ThirteenOrphans = ShantenThirteenOrphans(h)
		r.Min = min(r.Min, r.ThirteenOrphans)
	}
	return r
}

// 规则关闭的和了形
const noShape = 99

// ShantenSevenPairs 七对子向听数
func ShantenSevenPairs(h Hand34) int {
	pairs, kinds := 0, 0
	for _, c := range h {
		if c >= 1 {
			kinds++
		}
		if c >= 2 {
			pairs++
		}
	}
	if pairs == 7 {
		return Agari
	}
	return 6 - pairs + max(0, 7-kinds)
}

// ShantenThirteenOrphans 国士无双向听数
func ShantenThirteenOrphans(h Hand34) int {
	kinds, pair := 0, 0
	for _, k := range TerminalsAndHonors {
		if h[k] >= 1 {
			kinds++
		}
		if h[k] >= 2 {
			pair = 1
		}
	}
	return 13 - kinds - pair
}

// ShantenStandard 一般形向听数
func ShantenStandard(h Hand34) int {
	return shantenStandard(h, h.validate())
}

// shantenStandard n 为已校验的张数
func shantenStandard(h Hand34, n int) int {
	s := newShantenSearch(h)
	s.removeHonors(n)
	s.scan((TileCountWinner - n) / 3)
	return s.min
}

// shantenSearch 数牌部分的深度优先搜索, 所有选择成对地施加和撤销
type shantenSearch struct {
	tiles    Hand34
	melds    int
	tatsu    int
	pairs    int
	jidahai  int    // 四张字牌, 无法作为雀头或搭子使用
	fours    uint32 // 四张数牌位置, 第27位表示字牌
	isolated uint32 // 孤张位置, 第27位表示字牌
	min      int
}

const honorBit = 1 << NumberKinds

func newShantenSearch(h Hand34) *shantenSearch {
	return &shantenSearch{tiles: h, min: 8}
}

func (s *shantenSearch) removeHonors(n int) {
	var four, lone uint32
	for i := NumberKinds; i < KindCount; i++ {
		bit := uint32(1) << (i - NumberKinds)
		switch s.tiles[i] {
		case 4:
			s.melds++
			s.jidahai++
			four |= bit
			lone |= bit
		case 3:
			s.melds++
		case 2:
			s.pairs++
		case 1:
			lone |= bit
		}
	}

	if s.jidahai > 0 && n%3 == 2 {
		s.jidahai--
	}

	if lone != 0 {
		s.isolated |= honorBit
		if four|lone == four {
			s.fours |= honorBit
		}
	}
}

func (s *shantenSearch) scan(initMelds int) {
	for i := 0; i < NumberKinds; i++ {
		if s.tiles[i] == 4 {
			s.fours |= 1 << i
		}
	}
	s.melds += initMelds
	s.run(0)
}

func (s *shantenSearch) run(depth int) {
	if s.min == Agari {
		return
	}
	for depth < NumberKinds && s.tiles[depth] == 0 {
		depth++
	}
	if depth >= NumberKinds {
		s.update()
		return
	}

	i := depth % 9
	t := &s.tiles
	switch t[depth] {
	case 4:
		s.addSet(depth)
		if i < 7 && t[depth+2] > 0 {
			if t[depth+1] > 0 {
				s.addSequence(depth)
				s.run(depth + 1)
				s.removeSequence(depth)
			}
			s.addGapTatsu(depth)
			s.run(depth + 1)
			s.removeGapTatsu(depth)
		}
		if i < 8 && t[depth+1] > 0 {
			s.addSideTatsu(depth)
			s.run(depth + 1)
			s.removeSideTatsu(depth)
		}
		s.addIsolated(depth)
		s.run(depth + 1)
		s.removeIsolated(depth)
		s.removeSet(depth)

		s.addPair(depth)
		if i < 7 && t[depth+2] > 0 {
			if t[depth+1] > 0 {
				s.addSequence(depth)
				s.run(depth)
				s.removeSequence(depth)
			}
			s.addGapTatsu(depth)
			s.run(depth + 1)
			s.removeGapTatsu(depth)
		}
		if i < 8 && t[depth+1] > 0 {
			s.addSideTatsu(depth)
			s.run(depth + 1)
			s.removeSideTatsu(depth)
		}
		s.removePair(depth)

	case 3:
		s.addSet(depth)
		s.run(depth + 1)
		s.removeSet(depth)

		s.addPair(depth)
		if i < 7 && t[depth+1] > 0 && t[depth+2] > 0 {
			s.addSequence(depth)
			s.run(depth + 1)
			s.removeSequence(depth)
		} else {
			if i < 7 && t[depth+2] > 0 {
				s.addGapTatsu(depth)
				s.run(depth + 1)
				s.removeGapTatsu(depth)
			}
			if i < 8 && t[depth+1] > 0 {
				s.addSideTatsu(depth)
				s.run(depth + 1)
				s.removeSideTatsu(depth)
			}
		}
		s.removePair(depth)

		if i < 7 && t[depth+1] >= 2 && t[depth+2] >= 2 {
			s.addSequence(depth)
			s.addSequence(depth)
			s.run(depth)
			s.removeSequence(depth)
			s.removeSequence(depth)
		}

	case 2:
		s.addPair(depth)
		s.run(depth + 1)
		s.removePair(depth)
		if i < 7 && t[depth+1] > 0 && t[depth+2] > 0 {
			s.addSequence(depth)
			s.run(depth)
			s.removeSequence(depth)
		}

	case 1:
		if i < 6 && t[depth+1] == 1 && t[depth+2] > 0 && t[depth+3] != 4 {
			s.addSequence(depth)
			s.run(depth + 2)
			s.removeSequence(depth)
		} else {
			s.addIsolated(depth)
			s.run(depth + 1)
			s.removeIsolated(depth)
			if i < 7 && t[depth+2] > 0 {
				if t[depth+1] > 0 {
					s.addSequence(depth)
					s.run(depth + 1)
					s.removeSequence(depth)
				}
				s.addGapTatsu(depth)
				s.run(depth + 1)
				s.removeGapTatsu(depth)
			}
			if i < 8 && t[depth+1] > 0 {
				s.addSideTatsu(depth)
				s.run(depth + 1)
				s.removeSideTatsu(depth)
			}
		}
	}
}

func (s *shantenSearch) update() {
	ret := 8 - 2*s.melds - s.tatsu - s.pairs
	blocks := s.melds + s.tatsu
	if s.pairs > 0 {
		blocks += s.pairs - 1
	} else if s.fours != 0 && s.isolated != 0 && s.fours|s.isolated == s.fours {
		// 孤张全在四张的位置上, 无法单骑
		ret++
	}
	if blocks > 4 {
		ret += blocks - 4
	}
	if ret != Agari && ret < s.jidahai {
		ret = s.jidahai
	}
	s.min = min(s.min, ret)
}

func (s *shantenSearch) addSet(k int) {
	s.tiles[k] -= 3
	s.melds++
}

func (s *shantenSearch) removeSet(k int) {
	s.tiles[k] += 3
	s.melds--
}

func (s *shantenSearch) addPair(k int) {
	s.tiles[k] -= 2
	s.pairs++
}

func (s *shantenSearch) removePair(k int) {
	s.tiles[k] += 2
	s.pairs--
}

func (s *shantenSearch) addSequence(k int) {
	s.tiles[k]--
	s.tiles[k+1]--
	s.tiles[k+2]--
	s.melds++
}

func (s *shantenSearch) removeSequence(k int) {
	s.tiles[k]++
	s.tiles[k+1]++
	s.tiles[k+2]++
	s.melds--
}

func (s *shantenSearch) addSideTatsu(k int) {
	s.tiles[k]--
	s.tiles[k+1]--
	s.tatsu++
}

func (s *shantenSearch) removeSideTatsu(k int) {
	s.tiles[k]++
	s.tiles[k+1]++
	s.tatsu--
}

func (s *shantenSearch) addGapTatsu(k int) {
	s.tiles[k]--
	s.tiles[k+2]--
	s.tatsu++
}

func (s *shantenSearch) removeGapTatsu(k int) {
	s.tiles[k]++
	s.tiles[k+2]++
	s.tatsu--
}

func (s *shantenSearch) addIsolated(k int) {
	s.tiles[k]--
	s.isolated |= 1 << k
}

func (s *shantenSearch) removeIsolated(k int) {
	s.tiles[k]++
	s.isolated &^= 1 << k
}
