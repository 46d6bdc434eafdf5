package mahjong

import (
	"strings"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Kind 牌种下标, 0-8万 9-17筒 18-26索 27-33字
type Kind int

func MakeKind(color EColor, point int) Kind {
	return Kind(SeqBeginByColor[color] + point)
}

// MustKind 越界直接panic
func MustKind(i int) Kind {
	k := Kind(i)
	if !k.IsValid() {
		logger.Log.Panicf("kind %d out of range [0,%d)", i, KindCount)
	}
	return k
}

func (k Kind) IsValid() bool {
	return k >= 0 && k < KindCount
}

func (k Kind) Color() EColor {
	if !k.IsValid() {
		return ColorUndefined
	}
	return EColor(int(k) / 9)
}

// Suit 同Color, 字牌为ColorHonor
func (k Kind) Suit() EColor {
	return k.Color()
}

// Point 花色内偏移, 从0开始
func (k Kind) Point() int {
	return int(k) - SeqBeginByColor[k.Color()]
}

// Number 数牌点数1-9, 字牌1-7
func (k Kind) Number() int {
	return k.Point() + 1
}

func (k Kind) IsSuit() bool { // 数牌
	return k.IsValid() && k < NumberKinds
}

func (k Kind) IsHonor() bool { // 字牌
	return k >= NumberKinds && k < KindCount
}

func (k Kind) IsTerminal() bool { // 老头牌
	if !k.IsSuit() {
		return false
	}
	p := k.Point()
	return p == 0 || p == 8
}

func (k Kind) IsTerminalOrHonor() bool {
	return k.IsHonor() || k.IsTerminal()
}

func KindsName(kinds []Kind) string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return strings.Join(names, ",")
}

// Hand34 手牌直方图
type Hand34 [KindCount]int8

func NewHand34(kinds ...Kind) Hand34 {
	var h Hand34
	for _, k := range kinds {
		h[MustKind(int(k))]++
	}
	return h
}

// Count 总张数
func (h Hand34) Count() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// Kinds 按顺序展开
func (h Hand34) Kinds() []Kind {
	kinds := make([]Kind, 0, h.Count())
	for i, c := range h {
		for j := int8(0); j < c; j++ {
			kinds = append(kinds, Kind(i))
		}
	}
	return kinds
}

// SliceBySuit 切分为万 筒 索 字, 返回的是h自身的切片
func (h *Hand34) SliceBySuit() [ColorEnd][]int8 {
	var parts [ColorEnd][]int8
	for c := ColorBegin; c < ColorEnd; c++ {
		begin := SeqBeginByColor[c]
		parts[c] = h[begin : begin+PointCountByColor[c]]
	}
	return parts
}

// validate 搜索前的入参检查
func (h *Hand34) validate() int {
	n := 0
	for i, c := range h {
		if c < 0 || c > MaxCopies {
			logger.Log.Panicf("kind %s holds %d copies", Kind(i), c)
		}
		n += int(c)
	}
	if n > TileCountWinner {
		logger.Log.Panicf("hand holds %d tiles, more than %d", n, TileCountWinner)
	}
	return n
}

func sum8(s []int8) int {
	n := 0
	for _, c := range s {
		n += int(c)
	}
	return n
}
