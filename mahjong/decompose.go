package mahjong

import (
	"slices"
	"strconv"
	"strings"
)

// Block 面子/雀头; 国士无双时为全部牌的平铺
type Block []Kind

// Decomposition 一种拆解
type Decomposition []Block

func (b Block) IsPair() bool {
	return len(b) == 2 && b[0] == b[1]
}

func (b Block) IsTriplet() bool {
	return len(b) == 3 && b[0] == b[1] && b[1] == b[2]
}

func (b Block) IsSequence() bool {
	return len(b) == 3 && b[1] == b[0]+1 && b[2] == b[1]+1
}

func (b Block) digest() string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i, k := range b {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(k)))
	}
	sb.WriteByte('|')
	return sb.String()
}

// Digest 规范签名, 与块的先后顺序无关
func (d Decomposition) Digest() string {
	parts := make([]string, len(d))
	for i, b := range d {
		parts[i] = b.digest()
	}
	slices.Sort(parts)
	return strings.Join(parts, "#")
}

// Count 覆盖的总张数
func (d Decomposition) Count() int {
	n := 0
	for _, b := range d {
		n += len(b)
	}
	return n
}

// FindAllDecompositions 枚举和了手牌的全部拆解, 未和了返回nil
func FindAllDecompositions(h Hand34) []Decomposition {
	return DefaultAnalyzer.FindAllDecompositions(h)
}

func (a *Analyzer) FindAllDecompositions(h Hand34) []Decomposition {
	sevenPairs := a.rule.SevenPairs && IsCompleteSevenPairs(h)
	orphans := a.rule.ThirteenOrphans && IsCompleteThirteenOrphans(h)
	if !sevenPairs && !orphans && !IsCompleteStandard(h) {
		return nil
	}

	if h.Count() == 2 {
		return []Decomposition{{pairBlock(findPair(&h, KindNull))}}
	}

	if orphans {
		return []Decomposition{{Block(h.Kinds())}}
	}

	var found []Decomposition
	work := h
	placeholder := KindNull
	for k := East; k <= Red; k++ {
		if work[k] == 0 {
			placeholder = k
			break
		}
	}
	if placeholder != KindNull {
		work[placeholder] += 2
	}

	for i := range work {
		k := Kind(i)
		if k == placeholder || work[k] < 2 {
			continue
		}
		work[k] -= 2
		if IsCompleteStandard(work) {
			found = append(found, extractBlocks(work, placeholder, k)...)
		}
		work[k] += 2
	}

	if placeholder != KindNull {
		work[placeholder] -= 2
	}

	if sevenPairs {
		pairs := make(Decomposition, 0, 7)
		for i, c := range work {
			if c == 2 {
				pairs = append(pairs, pairBlock(Kind(i)))
			}
		}
		found = append(found, pairs)
	}

	result := dedupe(found)
	a.getLogger().Debugf("hand %s: %d decompositions (%d before dedupe)", h, len(result), len(found))
	return result
}

// extractBlocks 两种提取顺序: 先刻子后顺子, 先顺子后刻子
func extractBlocks(work Hand34, placeholder, pair Kind) []Decomposition {
	var out []Decomposition

	first := work
	triplets := takeTriplets(&first)
	if first.Count() == 2 {
		out = appendCovered(out, first, placeholder, triplets, nil, pair)
	} else if len(triplets) > 0 {
		sequences := takeSequences(&first)
		out = appendCovered(out, first, placeholder, triplets, sequences, pair)
	}

	second := work
	sequences := takeSequences(&second)
	if second.Count() == 2 {
		out = appendCovered(out, second, placeholder, sequences, nil, pair)
	} else {
		triplets := takeTriplets(&second)
		out = appendCovered(out, second, placeholder, sequences, triplets, pair)
	}
	return out
}

// appendCovered 只有剩余恰为占位雀头时才收录
func appendCovered(out []Decomposition, rest Hand34, placeholder Kind, a, b []Block, pair Kind) []Decomposition {
	if placeholder != KindNull {
		rest[placeholder] -= 2
	}
	if rest.Count() != 0 {
		return out
	}
	d := make(Decomposition, 0, len(a)+len(b)+1)
	d = append(d, a...)
	d = append(d, b...)
	return append(out, append(d, pairBlock(pair)))
}

func takeTriplets(h *Hand34) []Block {
	var blocks []Block
	for i := range h {
		if h[i] < 3 {
			continue
		}
		h[i] -= 3
		if IsCompleteStandard(*h) {
			k := Kind(i)
			blocks = append(blocks, Block{k, k, k})
		} else {
			h[i] += 3
		}
	}
	return blocks
}

func takeSequences(h *Hand34) []Block {
	var blocks []Block
	for i := 0; i < NumberKinds; i++ {
		if p := i % 9; p == 7 || p == 8 {
			continue
		}
		for h[i] > 0 && h[i+1] > 0 && h[i+2] > 0 {
			h[i]--
			h[i+1]--
			h[i+2]--
			if !IsCompleteStandard(*h) {
				h[i]++
				h[i+1]++
				h[i+2]++
				break
			}
			k := Kind(i)
			blocks = append(blocks, Block{k, k + 1, k + 2})
		}
	}
	return blocks
}

// findPair 第一个可作雀头的牌种
func findPair(h *Hand34, exclude Kind) Kind {
	for i, c := range h {
		if c >= 2 && Kind(i) != exclude {
			return Kind(i)
		}
	}
	return KindNull
}

func pairBlock(k Kind) Block {
	return Block{k, k}
}

func dedupe(found []Decomposition) []Decomposition {
	if len(found) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(found))
	result := make([]Decomposition, 0, len(found))
	for _, d := range found {
		key := d.Digest()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, d)
	}
	return result
}
