package mahjong

// DiscardWait 打出Discard后的进张
type DiscardWait struct {
	Discard Kind
	Wait    []Kind
}

// HairiResult 有效牌报告
type HairiResult struct {
	Now               int           // 当前向听数
	Wait              []Kind        // 13张(3n+1)时的进张
	WaitsAfterDiscard []DiscardWait // 14张(3n+2)时每种不退向的打法
}

// Hairi 有效牌, 和了时返回nil
func Hairi(h Hand34) *HairiResult {
	return DefaultAnalyzer.Hairi(h)
}

func (a *Analyzer) Hairi(h Hand34) *HairiResult {
	now := a.Shanten(h)
	if now == Agari {
		return nil
	}

	result := &HairiResult{Now: now}
	if h.Count()%3 == TileCountWait%3 {
		result.Wait = a.waits(h, now, KindNull)
		a.getLogger().Debugf("hand %s shanten %d waits [%s]", h, now, KindsName(result.Wait))
		return result
	}

	for i := range h {
		if h[i] == 0 {
			continue
		}
		k := Kind(i)
		h[k]--
		if a.Shanten(h) == now {
			result.WaitsAfterDiscard = append(result.WaitsAfterDiscard, DiscardWait{
				Discard: k,
				Wait:    a.waits(h, now, k),
			})
		}
		h[k]++
	}
	a.getLogger().Debugf("hand %s shanten %d: %d discards keep shanten", h, now, len(result.WaitsAfterDiscard))
	return result
}

// waits 摸入后向听数严格下降的牌种, 跳过刚打出的牌和已有四张的牌
func (a *Analyzer) waits(h Hand34, now int, discarded Kind) []Kind {
	var wait []Kind
	for i := range h {
		k := Kind(i)
		if k == discarded || h[k] >= MaxCopies {
			continue
		}
		h[k]++
		if a.Shanten(h) < now {
			wait = append(wait, k)
		}
		h[k]--
	}
	return wait
}

// Ukeire 进张剩余枚数: 每种 4 - 手牌 - 可见, 不小于0. visible 可为nil
func Ukeire(h Hand34, wait []Kind, visible *Hand34) int {
	total := 0
	for _, k := range wait {
		left := MaxCopies - int(h[k])
		if visible != nil {
			left -= int(visible[k])
		}
		if left > 0 {
			total += left
		}
	}
	return total
}
