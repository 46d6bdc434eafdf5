package mahjong

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrBadNotation   = errors.New("bad tile notation")
	ErrTooManyCopies = errors.New("more than four copies of a kind")
)

var suitLetters = [ColorEnd]byte{'m', 'p', 's', 'z'}

var letterToColor = map[byte]EColor{
	'm': ColorMan,
	'p': ColorPin,
	's': ColorSou,
	'z': ColorHonor,
}

// String 形如 1m 9p 7z
func (k Kind) String() string {
	if !k.IsValid() {
		return "?"
	}
	return strconv.Itoa(k.Number()) + string(suitLetters[k.Color()])
}

// ParseKind 解析单张, 如 "5p", "0s"(赤五)
func ParseKind(s string) (Kind, error) {
	if len(s) != 2 {
		return KindNull, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	h, err := ParseHand(s)
	if err != nil {
		return KindNull, err
	}
	return h.Kinds()[0], nil
}

// ParseHand 解析 "123m456p789s1122z" 形式的手牌, 0 视作赤五
func ParseHand(s string) (Hand34, error) {
	var h Hand34
	var pending []int
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == ' ':
			continue
		case ch >= '0' && ch <= '9':
			pending = append(pending, int(ch-'0'))
		default:
			color, ok := letterToColor[ch]
			if !ok || len(pending) == 0 {
				return h, fmt.Errorf("%w: unexpected %q at %d in %q", ErrBadNotation, ch, i, s)
			}
			for _, n := range pending {
				if n == 0 && color != ColorHonor {
					n = 5
				}
				if n < 1 || n > PointCountByColor[color] {
					return h, fmt.Errorf("%w: %d%c", ErrBadNotation, n, ch)
				}
				k := MakeKind(color, n-1)
				if h[k] >= MaxCopies {
					return h, fmt.Errorf("%w: %s", ErrTooManyCopies, k)
				}
				h[k]++
			}
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		return h, fmt.Errorf("%w: missing suit letter in %q", ErrBadNotation, s)
	}
	return h, nil
}

// MustParseHand 用于常量手牌, 解析失败panic
func MustParseHand(s string) Hand34 {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// String 按花色分组输出, 与ParseHand互逆
func (h Hand34) String() string {
	var sb strings.Builder
	for c := ColorBegin; c < ColorEnd; c++ {
		begin := SeqBeginByColor[c]
		written := false
		for p := 0; p < PointCountByColor[c]; p++ {
			for j := int8(0); j < h[begin+p]; j++ {
				sb.WriteByte(byte('1' + p))
				written = true
			}
		}
		if written {
			sb.WriteByte(suitLetters[c])
		}
	}
	return sb.String()
}
