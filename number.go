package jot

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/valyala/fastjson/fastfloat"
)

// 数字三分模型
//
// 词法形式 -? digits (. digits)? ([eE][+-]? digits)?（前导零不拒收）。
// 分类顺序:
//  1. 无小数点无指数: uint64 累加，溢出退化为浮点，否则按范围取
//     Integer / Unsigned
//  2. 含小数点或指数: 先在十进制文本上做精确整数求值（去点移位，
//     被丢弃的低位必须全零），命中 64 位整数则按 1 分类——
//     "0.0001E4" → Integer(1)、"922337203685477580.7E1" →
//     Integer(MaxInt64) 这类值无法经由 float64 精确到达；
//     否则走区域无关的字符串→双精度转换，NaN/Inf 失败，
//     零与 subnormal 归一为 Float(0)
//  3. 负号在分类之后施加（见 negateNumber）

// decodeNumber 解码非负数字（s[i] 为首位数字）
func decodeNumber(s string, i int) (*Value, int, error) {
	start := i
	n := len(s)
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	exact := true
	if i < n && s[i] == '.' {
		exact = false
		i++
		if i >= n || s[i] < '0' || s[i] > '9' {
			return nil, i, fmt.Errorf("jot: missing digit after '.'")
		}
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		exact = false
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= n || s[i] < '0' || s[i] > '9' {
			return nil, i, fmt.Errorf("jot: missing digit in exponent")
		}
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	v, err := classifyNumber(s[start:i], exact)
	if err != nil {
		return nil, start, err
	}
	return v, i, nil
}

// decodeNegNumber 解码负数（i 指向 '-' 后），分类后取负
func decodeNegNumber(s string, i int) (*Value, int, error) {
	if i >= len(s) || s[i] < '0' || s[i] > '9' {
		return nil, i, fmt.Errorf("jot: missing digit after '-'")
	}
	v, end, err := decodeNumber(s, i)
	if err != nil {
		return nil, end, err
	}
	return negateNumber(v), end, nil
}

// classifyNumber 把数字文本分类为三种表示之一。
// plainInt 表示文本不含小数点与指数。
func classifyNumber(span string, plainInt bool) (*Value, error) {
	if plainInt {
		var u uint64
		for i := 0; i < len(span); i++ {
			d := uint64(span[i] - '0')
			if u > (math.MaxUint64-d)/10 {
				// 64 位溢出，退化为浮点
				return floatNumber(span)
			}
			u = u*10 + d
		}
		return integerValue(u), nil
	}
	if u, ok := exactDecimalInt(span); ok {
		return integerValue(u), nil
	}
	return floatNumber(span)
}

// integerValue 按范围取 Integer / Unsigned
func integerValue(u uint64) *Value {
	if u <= math.MaxInt64 {
		return NewInteger(int64(u))
	}
	return NewUnsigned(u)
}

// exactDecimalInt 在十进制文本上精确求值（不经过 float64）。
// 小数点去除后按指数移位；负向移位丢弃的低位必须全为零。
// 结果超出 uint64 或不是整数时返回 false。
func exactDecimalInt(span string) (uint64, bool) {
	i, n := 0, len(span)
	intStart := i
	for i < n && span[i] >= '0' && span[i] <= '9' {
		i++
	}
	digits := span[intStart:i]
	fracLen := 0
	if i < n && span[i] == '.' {
		i++
		fs := i
		for i < n && span[i] >= '0' && span[i] <= '9' {
			i++
		}
		digits += span[fs:i]
		fracLen = i - fs
	}
	exp := 0
	if i < n && (span[i] == 'e' || span[i] == 'E') {
		i++
		neg := false
		if span[i] == '+' || span[i] == '-' {
			neg = span[i] == '-'
			i++
		}
		for ; i < n; i++ {
			exp = exp*10 + int(span[i]-'0')
			if exp > 100000 {
				exp = 100000 // 饱和即可，后续溢出/全零判断不受影响
			}
		}
		if neg {
			exp = -exp
		}
	}
	effExp := exp - fracLen

	// 去前导零
	k := 0
	for k < len(digits) && digits[k] == '0' {
		k++
	}
	digits = digits[k:]
	if len(digits) == 0 {
		return 0, true
	}
	if effExp < 0 {
		drop := -effExp
		if drop >= len(digits) {
			return 0, false // 幅值落在 (0,1)，非整数
		}
		for j := len(digits) - drop; j < len(digits); j++ {
			if digits[j] != '0' {
				return 0, false
			}
		}
		digits = digits[:len(digits)-drop]
		effExp = 0
	}
	var u uint64
	for j := 0; j < len(digits); j++ {
		d := uint64(digits[j] - '0')
		if u > (math.MaxUint64-d)/10 {
			return 0, false
		}
		u = u*10 + d
	}
	for ; effExp > 0; effExp-- {
		if u > math.MaxUint64/10 {
			return 0, false
		}
		u *= 10
	}
	return u, true
}

// floatNumber 区域无关的字符串→双精度转换。
// NaN/Inf（含上溢）失败；下溢到零可接受；零与 subnormal 归一为 Float(0)。
func floatNumber(span string) (*Value, error) {
	f, err := fastfloat.Parse(span)
	if err != nil {
		// fastfloat 对超范围输入报错；下溢出的零单独放行
		f2, err2 := strconv.ParseFloat(span, 64)
		if numErr, ok := err2.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange || f2 != 0 {
			return nil, fmt.Errorf("jot: number out of range: %q", span)
		}
		f = 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("jot: number out of range: %q", span)
	}
	if math.Float64bits(f)&0x7FF0000000000000 == 0 {
		// 零或 subnormal
		return NewFloat(0), nil
	}
	return NewFloat(f), nil
}

// negateNumber 分类后的取负。
// Unsigned u ≤ 2^63 收为 Integer（u == 2^63 恰为 MinInt64），
// 更大时退化为浮点；Integer 原地取负（MinInt64 反向特例为
// Unsigned 2^63）；Float 翻转符号（零不携带负号，保证再编码稳定）。
func negateNumber(v *Value) *Value {
	switch v.kind {
	case KindUnsigned:
		u := v.num
		if u <= 1<<63 {
			if u == 1<<63 {
				return NewInteger(math.MinInt64)
			}
			return NewInteger(-int64(u))
		}
		return NewFloat(-float64(u))
	case KindInteger:
		n := int64(v.num)
		if n == math.MinInt64 {
			return NewUnsigned(1 << 63)
		}
		return NewInteger(-n)
	default: // KindFloat
		f := math.Float64frombits(v.num)
		if f == 0 {
			return NewFloat(0)
		}
		return NewFloat(-f)
	}
}

// ─── 数值转换（无损时成立） ───

// AsInt64 转换为有符号 64 位整数。
// Integer 恒成立；Unsigned 要求 ≤ MaxInt64；Float 要求按位分类
// 证明可精确表示（尾数低位无截断），任何信息丢失即失败。
func (v *Value) AsInt64() (int64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.kind {
	case KindInteger:
		return int64(v.num), true
	case KindUnsigned:
		if v.num > math.MaxInt64 {
			return 0, false
		}
		return int64(v.num), true
	case KindFloat:
		f := math.Float64frombits(v.num)
		mag, ok := float64Magnitude(f)
		if !ok {
			return 0, false
		}
		if math.Signbit(f) {
			if mag > 1<<63 {
				return 0, false
			}
			if mag == 1<<63 {
				return math.MinInt64, true
			}
			return -int64(mag), true
		}
		if mag > math.MaxInt64 {
			return 0, false
		}
		return int64(mag), true
	default:
		return 0, false
	}
}

// AsUint64 转换为无符号 64 位整数
func (v *Value) AsUint64() (uint64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.kind {
	case KindInteger:
		n := int64(v.num)
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case KindUnsigned:
		return v.num, true
	case KindFloat:
		f := math.Float64frombits(v.num)
		mag, ok := float64Magnitude(f)
		if !ok {
			return 0, false
		}
		if math.Signbit(f) && mag != 0 {
			return 0, false
		}
		return mag, true
	default:
		return 0, false
	}
}

// AsFloat64 转换为双精度浮点，任何数值类型均成立（幅值/精度损失可接受）
func (v *Value) AsFloat64() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.kind {
	case KindInteger:
		return float64(int64(v.num)), true
	case KindUnsigned:
		return float64(v.num), true
	case KindFloat:
		return math.Float64frombits(v.num), true
	default:
		return 0, false
	}
}

// float64Magnitude 按位分类 IEEE-754 binary64，幅值为精确整数时返回。
// 指数域 0x7FF（NaN/Inf）与非零 subnormal（幅值落在 (0,1)）失败。
func float64Magnitude(f float64) (uint64, bool) {
	b := math.Float64bits(f)
	exp := int(b>>52) & 0x7FF
	frac := b & (1<<52 - 1)
	switch exp {
	case 0x7FF:
		return 0, false
	case 0:
		if frac == 0 {
			return 0, true
		}
		return 0, false
	}
	m := frac | 1<<52
	e := exp - 1075
	if e >= 0 {
		if e > bits.LeadingZeros64(m) {
			return 0, false
		}
		return m << e, true
	}
	if e < -52 {
		return 0, false
	}
	if m&(1<<uint(-e)-1) != 0 {
		return 0, false
	}
	return m >> uint(-e), true
}
