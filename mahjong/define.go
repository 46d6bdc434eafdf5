package mahjong

type EColor int

const (
	ColorUndefined EColor = -1
	ColorMan       EColor = iota - 1 // 万子
	ColorPin                         // 筒子
	ColorSou                         // 索子
	ColorHonor                       // 字牌
	ColorEnd
	ColorBegin = ColorMan
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 7}
var SeqBeginByColor = [ColorEnd]int{0, 9, 18, 27}

const (
	KindCount   = 34 // 牌种数
	NumberKinds = 27 // 数牌种数
	HonorKinds  = 7  // 字牌种数
	MaxCopies   = 4  // 每种牌张数
)

const (
	TileCountWait   = 13
	TileCountWinner = 14
)

// Agari 和了时的向听数
const Agari = -1

// 和了形
type EShape int

const (
	ShapeNone            EShape = iota
	ShapeStandard               // 一般形
	ShapeSevenPairs             // 七对子
	ShapeThirteenOrphans        // 国士无双
)

func (s EShape) String() string {
	switch s {
	case ShapeStandard:
		return "standard"
	case ShapeSevenPairs:
		return "seven_pairs"
	case ShapeThirteenOrphans:
		return "thirteen_orphans"
	default:
		return "none"
	}
}

const (
	KindNull Kind = -1

	Man1 Kind = iota - 1
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	Sou1
	Sou2
	Sou3
	Sou4
	Sou5
	Sou6
	Sou7
	Sou8
	Sou9
	East  // 东
	South // 南
	West  // 西
	North // 北
	White // 白
	Green // 发
	Red   // 中
)

// 幺九牌
var TerminalsAndHonors = [13]Kind{Man1, Man9, Pin1, Pin9, Sou1, Sou9, East, South, West, North, White, Green, Red}
