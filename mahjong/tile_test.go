package mahjong_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindInfo(t *testing.T) {
	cases := []struct {
		kind      mahjong.Kind
		name      string
		color     mahjong.EColor
		number    int
		honor     bool
		yaochuhai bool
	}{
		{mahjong.Man1, "1m", mahjong.ColorMan, 1, false, true},
		{mahjong.Man5, "5m", mahjong.ColorMan, 5, false, false},
		{mahjong.Pin9, "9p", mahjong.ColorPin, 9, false, true},
		{mahjong.Sou2, "2s", mahjong.ColorSou, 2, false, false},
		{mahjong.East, "1z", mahjong.ColorHonor, 1, true, true},
		{mahjong.Red, "7z", mahjong.ColorHonor, 7, true, true},
	}
	for i, c := range cases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			assert.Equal(t, c.name, c.kind.String())
			assert.Equal(t, c.color, c.kind.Suit())
			assert.Equal(t, c.number, c.kind.Number())
			assert.Equal(t, c.honor, c.kind.IsHonor())
			assert.Equal(t, c.yaochuhai, c.kind.IsTerminalOrHonor())
			assert.Equal(t, c.kind, mahjong.MakeKind(c.color, c.number-1))
		})
	}
	assert.Equal(t, mahjong.Kind(33), mahjong.Red)
	assert.Equal(t, mahjong.Kind(31), mahjong.White)
}

func TestMustKindOutOfRange(t *testing.T) {
	assert.Panics(t, func() { mahjong.MustKind(34) })
	assert.Panics(t, func() { mahjong.MustKind(-1) })
	assert.Equal(t, mahjong.Sou9, mahjong.MustKind(26))
}

func TestSliceBySuit(t *testing.T) {
	h := mahjong.MustParseHand("19m5p37s17z")
	parts := h.SliceBySuit()
	require.Len(t, parts[mahjong.ColorMan], 9)
	require.Len(t, parts[mahjong.ColorHonor], 7)
	assert.Equal(t, []int8{1, 0, 0, 0, 0, 0, 0, 0, 1}, parts[mahjong.ColorMan])
	assert.Equal(t, []int8{0, 0, 0, 0, 1, 0, 0, 0, 0}, parts[mahjong.ColorPin])
	assert.Equal(t, []int8{0, 0, 1, 0, 0, 0, 1, 0, 0}, parts[mahjong.ColorSou])
	assert.Equal(t, []int8{1, 0, 0, 0, 0, 0, 1}, parts[mahjong.ColorHonor])
}

func TestParseHand(t *testing.T) {
	h, err := mahjong.ParseHand("123m 450p 789s 1122z")
	require.NoError(t, err)
	assert.Equal(t, 13, h.Count())
	assert.Equal(t, int8(2), h[mahjong.Pin5])
	assert.Equal(t, "123m455p789s1122z", h.String())

	again, err := mahjong.ParseHand(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, again)

	assert.Equal(t, mahjong.NewHand34(mahjong.Man1, mahjong.Man1, mahjong.Red), mahjong.MustParseHand("11m7z"))
}

func TestParseHandErrors(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{"123", mahjong.ErrBadNotation},
		{"m", mahjong.ErrBadNotation},
		{"12x", mahjong.ErrBadNotation},
		{"8z", mahjong.ErrBadNotation},
		{"0z", mahjong.ErrBadNotation},
		{"11111m", mahjong.ErrTooManyCopies},
		{"5555m0m", mahjong.ErrTooManyCopies},
	}
	for _, c := range cases {
		_, err := mahjong.ParseHand(c.in)
		assert.True(t, errors.Is(err, c.err), "ParseHand(%q) = %v, want %v", c.in, err, c.err)
	}
	assert.Panics(t, func() { mahjong.MustParseHand("1x") })
}

func TestParseKind(t *testing.T) {
	k, err := mahjong.ParseKind("0s")
	require.NoError(t, err)
	assert.Equal(t, mahjong.Sou5, k)

	_, err = mahjong.ParseKind("12m")
	assert.ErrorIs(t, err, mahjong.ErrBadNotation)
}

func TestIsProperOpenSet(t *testing.T) {
	cases := []struct {
		kinds []mahjong.Kind
		want  bool
	}{
		{[]mahjong.Kind{mahjong.East, mahjong.East}, true},
		{[]mahjong.Kind{mahjong.Pin3, mahjong.Pin3, mahjong.Pin3}, true},
		{[]mahjong.Kind{mahjong.Sou9, mahjong.Sou9, mahjong.Sou9, mahjong.Sou9}, true},
		{[]mahjong.Kind{mahjong.Man3, mahjong.Man4, mahjong.Man5}, true},
		{[]mahjong.Kind{mahjong.Man5, mahjong.Man3, mahjong.Man4}, true},
		{[]mahjong.Kind{mahjong.Man8, mahjong.Man9, mahjong.Pin1}, false},
		{[]mahjong.Kind{mahjong.North, mahjong.White, mahjong.Green}, false},
		{[]mahjong.Kind{mahjong.Man3, mahjong.Man5, mahjong.Man7}, false},
		{[]mahjong.Kind{mahjong.Man3, mahjong.Man4, mahjong.Man5, mahjong.Man5}, false},
		{[]mahjong.Kind{mahjong.Man3}, false},
		{[]mahjong.Kind{mahjong.Man3, mahjong.Man3, mahjong.Man3, mahjong.Man3, mahjong.Man3}, false},
	}
	for i, c := range cases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			if got := mahjong.IsProperOpenSet(c.kinds); got != c.want {
				t.Errorf("IsProperOpenSet(%v) = %v, want %v", c.kinds, got, c.want)
			}
		})
	}
}
