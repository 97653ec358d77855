package jot

import "math"

// 结构相等（带数值容差）
//
// 容器与字符串只在同类之间相等；三种数值表示跨类比较: 两个精确
// 整数比较数学值（负 Integer 永不等于任何 Unsigned），任一侧为
// Float 时另一侧提升为双精度后用相对容差规则
//
//	x == y || |x-y| / max(|x|,|y|) < tolerance
//
// 任一侧为 Raw 时先解码再重试，解码失败即不相等。tolerance 取
// 非负实数，0 退化为严格相等。Equal 在运行期不会失败。

// Equal 递归判断 a 与 b 是否结构相等
func Equal(a, b *Value, tolerance float64) bool {
	if b.kind == KindRaw {
		dec, err := DecodeString(b.str)
		if err != nil {
			return false
		}
		return Equal(a, dec, tolerance)
	}
	switch a.kind {
	case KindArray:
		return b.kind == KindArray && equalArrays(a, b, tolerance)
	case KindObject:
		return b.kind == KindObject && equalObjects(a, b, tolerance)
	case KindString:
		return b.kind == KindString && a.str == b.str
	case KindInteger:
		return equalToInteger(int64(a.num), b, tolerance)
	case KindUnsigned:
		return equalToUnsigned(a.num, b, tolerance)
	case KindFloat:
		return equalToFloat(math.Float64frombits(a.num), b, tolerance)
	case KindBoolean:
		return b.kind == KindBoolean && a.num == b.num
	case KindNull:
		return b.kind == KindNull
	default: // KindRaw
		return Equal(b, a, tolerance)
	}
}

func equalArrays(a, b *Value, tolerance float64) bool {
	if a.elems.Len() != b.elems.Len() {
		return false
	}
	ea, eb := a.elems.First(), b.elems.First()
	for ea != nil {
		if !Equal(ea.Value(), eb.Value(), tolerance) {
			return false
		}
		ea, eb = ea.Next(), eb.Next()
	}
	return true
}

// equalObjects 基数相同且 a 的每个字段都能在 b 中按键找到相等值。
// 在 b 上直接建索引把内层查找摊平为 O(1)。
func equalObjects(a, b *Value, tolerance float64) bool {
	if a.fields.Len() != b.fields.Len() {
		return false
	}
	if b.oidx == nil {
		b.buildObjectIndex()
	}
	for e := a.fields.First(); e != nil; e = e.Next() {
		f := e.Value()
		bval := b.oidx[f.name]
		if bval == nil || !Equal(f.value, bval, tolerance) {
			return false
		}
	}
	return true
}

func equalDoubles(a, b, tolerance float64) bool {
	return a == b || math.Abs(b-a)/math.Max(math.Abs(a), math.Abs(b)) < tolerance
}

func equalToInteger(n int64, b *Value, tolerance float64) bool {
	switch b.kind {
	case KindInteger:
		return n == int64(b.num)
	case KindUnsigned:
		return n >= 0 && uint64(n) == b.num
	case KindFloat:
		return equalDoubles(float64(n), math.Float64frombits(b.num), tolerance)
	default:
		return false
	}
}

func equalToUnsigned(u uint64, b *Value, tolerance float64) bool {
	switch b.kind {
	case KindInteger:
		q := int64(b.num)
		return q >= 0 && u == uint64(q)
	case KindUnsigned:
		return u == b.num
	case KindFloat:
		return equalDoubles(float64(u), math.Float64frombits(b.num), tolerance)
	default:
		return false
	}
}

func equalToFloat(f float64, b *Value, tolerance float64) bool {
	switch b.kind {
	case KindInteger:
		return equalDoubles(f, float64(int64(b.num)), tolerance)
	case KindUnsigned:
		return equalDoubles(f, float64(b.num), tolerance)
	case KindFloat:
		return equalDoubles(f, math.Float64frombits(b.num), tolerance)
	default:
		return false
	}
}
