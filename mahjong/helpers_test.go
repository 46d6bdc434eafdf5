package mahjong_test

import (
	"math/rand/v2"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(20240601, 34))
}

// randomCompleteHands 四面子一雀头, 每种不超过四张
func randomCompleteHands(n int) []mahjong.Hand34 {
	r := newRand()
	hands := make([]mahjong.Hand34, 0, n)
	for len(hands) < n {
		var h mahjong.Hand34
		for range 4 {
			if r.IntN(3) == 0 {
				h[r.IntN(mahjong.KindCount)] += 3
			} else {
				k := mahjong.MakeKind(mahjong.EColor(r.IntN(3)), r.IntN(7))
				h[k]++
				h[k+1]++
				h[k+2]++
			}
		}
		h[r.IntN(mahjong.KindCount)] += 2
		if valid(h) {
			hands = append(hands, h)
		}
	}
	return hands
}

// randomHands 从136张中随机抽size张
func randomHands(n, size int) []mahjong.Hand34 {
	r := newRand()
	wall := make([]mahjong.Kind, 0, mahjong.KindCount*mahjong.MaxCopies)
	for k := range mahjong.KindCount {
		for range mahjong.MaxCopies {
			wall = append(wall, mahjong.Kind(k))
		}
	}
	hands := make([]mahjong.Hand34, n)
	for i := range hands {
		r.Shuffle(len(wall), func(a, b int) { wall[a], wall[b] = wall[b], wall[a] })
		hands[i] = mahjong.NewHand34(wall[:size]...)
	}
	return hands
}

func valid(h mahjong.Hand34) bool {
	for _, c := range h {
		if c > mahjong.MaxCopies {
			return false
		}
	}
	return true
}
