// Package structure 实现基于价格行为的市场结构检测：公允价值缺口、
// 流动性水平、订单块、溢价/折价区间、结构转换、时段流动性与流动性真空。
// 所有检测函数均为纯函数：不修改输入K线，每次调用构造全新的结果值，
// 数据不足时返回空结果而非错误。
package structure

const (
	// TypeBullish 表示看涨方向。
	TypeBullish = "Bullish"
	// TypeBearish 表示看跌方向。
	TypeBearish = "Bearish"

	// GapTypeBearShort 为看跌缺口最终输出的短代码。历史遗留：看涨侧
	// 保留 "Bullish" 全称而看跌侧被改写为 "bear"，下游消费方已依赖
	// 这两个字面量，不可统一。
	GapTypeBearShort = "bear"

	// OrderBlockBull / OrderBlockBear 为订单块方向字面量，小写缩写
	// 与缺口侧的大写全称并存，同属下游已依赖的历史命名。
	OrderBlockBull = "bull"
	OrderBlockBear = "bear"

	// EventBOS 表示顺势突破（Break of Structure）。
	EventBOS = "BOS"
	// EventCHoCH 表示逆势突破（Change of Character）。
	EventCHoCH = "CHoCH"

	// StatusPremium / StatusDiscount 表示价格位于区间中轴上方/下方。
	StatusPremium  = "Premium"
	StatusDiscount = "Discount"
)

// 各检测器的默认回看窗口。
const (
	DefaultLiquidityLookback  = 200
	DefaultOrderBlockLookback = 100
	DefaultRangeLookback      = 200
	DefaultVoidLookback       = 150
)

// Gap 表示一个未回补的公允价值缺口（FVG）。
// Lo/Hi 为 Bottom/Top 的规范化别名，在构造时一并填充。
type Gap struct {
	Type         string
	Top          float64
	Bottom       float64
	CreatedAtBar int
	Lo           float64
	Hi           float64
}

// SwingPoint 表示一个局部摆动极值点。
type SwingPoint struct {
	Price    float64
	BarIndex int
}

// Levels 汇总买方流动性（BSL，摆动高点）与卖方流动性（SSL，摆动低点）。
// Highs 按价格降序，Lows 按价格升序，各至多5个。
type Levels struct {
	Highs []SwingPoint
	Lows  []SwingPoint
}

// OrderBlock 表示一个未被缓解的订单块。
type OrderBlock struct {
	Top      float64
	Bottom   float64
	BarIndex int
	Type     string
}

// RangePosition 描述当前价格在近期交易区间中的位置。
type RangePosition struct {
	RangeHigh   float64
	RangeLow    float64
	Equilibrium float64
	Status      string
}

// Shift 表示最近一次被分类的结构突破。
type Shift struct {
	Type          string
	Event         string
	PriceLevel    float64
	BreakBarIndex int
}

// Void 表示一根未被回补的大实体K线形成的流动性真空。
// 区间取K线实体：看涨时 Bottom=开盘价、Top=收盘价，看跌时反之。
type Void struct {
	Type     string
	Top      float64
	Bottom   float64
	BarIndex int
}
