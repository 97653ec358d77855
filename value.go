package jot

import (
	"math"

	"github.com/uniyakcom/jot/internal/support/seq"
)

// Kind JSON 值类型
type Kind uint8

const (
	KindArray    Kind = iota // 数组
	KindObject               // 对象
	KindString               // 字符串
	KindInteger              // 有符号 64 位整数
	KindUnsigned             // 无符号 64 位整数
	KindFloat                // IEEE-754 binary64 浮点数
	KindBoolean              // true / false
	KindNull                 // null
	KindRaw                  // 预编码 JSON 片段（仅由调用方构造，解码器不产出）
)

// String 返回类型名称
func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// field 对象字段（保持插入顺序）
type field struct {
	name  string
	value *Value
}

// Value JSON 文档树节点
//
// 九种类型共用一个结构体（C union 式布局）:
//   - num: 标量槽位，按 kind 解释为 int64 / uint64 / float64 位型 / bool
//   - str: KindString 的 UTF-8 内容，或 KindRaw 的预编码片段
//   - elems / fields: 容器的有序序列（追加 O(1)，随机访问 O(n)）
//   - access / aidx / oidx: JIT 索引状态，见 index.go
//
// 所有权: Value 独占其全部后代。Append/Put 是移交操作，调用方不得
// 继续持有已插入的子节点；需要保留时先 Clone。
type Value struct {
	str    string
	num    uint64
	elems  seq.List[*Value]
	fields seq.List[field]
	access uint64
	aidx   []*Value
	oidx   map[string]*Value
	kind   Kind
}

// ─── 构造 ───

// NewInteger 构造有符号整数值
func NewInteger(n int64) *Value {
	return &Value{kind: KindInteger, num: uint64(n)}
}

// NewUnsigned 构造无符号整数值
func NewUnsigned(n uint64) *Value {
	return &Value{kind: KindUnsigned, num: n}
}

// NewFloat 构造浮点数值
//
// 前置条件: n 必须有限（normal 或零）。NaN/Inf 触发 panic。
func NewFloat(n float64) *Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		panic("jot: NewFloat requires a finite value")
	}
	return &Value{kind: KindFloat, num: math.Float64bits(n)}
}

// NewBoolean 构造布尔值
func NewBoolean(truth bool) *Value {
	v := &Value{kind: KindBoolean}
	if truth {
		v.num = 1
	}
	return v
}

// NewNull 构造 null 值
func NewNull() *Value {
	return &Value{kind: KindNull}
}

// NewString 构造字符串值（内容须为合法 UTF-8）
func NewString(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// NewStringBytes 构造字符串值，拷贝输入字节
func NewStringBytes(b []byte) *Value {
	return &Value{kind: KindString, str: string(b)}
}

// NewRaw 构造预编码 JSON 片段，编码时原样输出。
// 片段的合法性由调用方负责，解码器永远不会产出 KindRaw。
func NewRaw(encoding string) *Value {
	return &Value{kind: KindRaw, str: encoding}
}

// NewArray 构造空数组
func NewArray() *Value {
	return &Value{kind: KindArray}
}

// NewObject 构造空对象
func NewObject() *Value {
	return &Value{kind: KindObject}
}

// ─── 类型与标量获取 ───

// Kind 返回值类型
func (v *Value) Kind() Kind { return v.kind }

// IsNull 是否为 null
func (v *Value) IsNull() bool { return v == nil || v.kind == KindNull }

func (v *Value) mustKind(k Kind) {
	if v.kind != k {
		panic("jot: " + k.String() + " accessor on " + v.kind.String() + " value")
	}
}

// Int64 返回整数值（类型不符触发 panic，安全路径用 AsInt64 / GetInt64）
func (v *Value) Int64() int64 {
	v.mustKind(KindInteger)
	return int64(v.num)
}

// Uint64 返回无符号整数值（类型不符触发 panic）
func (v *Value) Uint64() uint64 {
	v.mustKind(KindUnsigned)
	return v.num
}

// Float64 返回浮点数值（类型不符触发 panic）
func (v *Value) Float64() float64 {
	v.mustKind(KindFloat)
	return math.Float64frombits(v.num)
}

// Bool 返回布尔值（类型不符触发 panic）
func (v *Value) Bool() bool {
	v.mustKind(KindBoolean)
	return v.num != 0
}

// Str 返回字符串内容（类型不符触发 panic）
func (v *Value) Str() string {
	v.mustKind(KindString)
	return v.str
}

// RawEncoding 返回预编码片段（类型不符触发 panic）
func (v *Value) RawEncoding() string {
	v.mustKind(KindRaw)
	return v.str
}

// Len 返回数组或对象的元素数量，其他类型返回 0
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return v.elems.Len()
	case KindObject:
		return v.fields.Len()
	default:
		return 0
	}
}

// ─── 容器修改（移交所有权，作废索引） ───

// Append 追加数组元素，elem 的所有权移交给 v，返回 v 便于链式调用
func (v *Value) Append(elem *Value) *Value {
	v.mustKind(KindArray)
	v.clobberArray()
	v.elems.Append(elem)
	return v
}

// Put 追加对象字段，value 的所有权移交给 v，返回 v 便于链式调用。
// 字段名唯一性由调用方负责；重复键在线性扫描下首个命中，
// 索引建立后最后插入者命中（见 index.go）。
func (v *Value) Put(key string, value *Value) *Value {
	v.mustKind(KindObject)
	v.clobberObject()
	v.fields.Append(field{name: key, value: value})
	return v
}

// Pop 摘除并返回指定字段的值（所有权交还调用方），不存在返回 nil
func (v *Value) Pop(key string) *Value {
	v.mustKind(KindObject)
	v.clobberObject()
	var prev *seq.Elem[field]
	for e := v.fields.First(); e != nil; e = e.Next() {
		if e.Value().name == key {
			val := e.Value().value
			v.fields.Remove(prev, e)
			return val
		}
		prev = e
	}
	return nil
}

// ─── 遍历（插入顺序） ───

// ArrayEach 遍历数组元素，fn 返回 false 停止遍历
func (v *Value) ArrayEach(fn func(i int, elem *Value) bool) {
	if v == nil || v.kind != KindArray {
		return
	}
	i := 0
	for e := v.elems.First(); e != nil; e = e.Next() {
		if !fn(i, e.Value()) {
			return
		}
		i++
	}
}

// ObjectEach 遍历对象字段（保持插入顺序），fn 返回 false 停止遍历
func (v *Value) ObjectEach(fn func(key string, val *Value) bool) {
	if v == nil || v.kind != KindObject {
		return
	}
	for e := v.fields.First(); e != nil; e = e.Next() {
		f := e.Value()
		if !fn(f.name, f.value) {
			return
		}
	}
}

// ─── 深拷贝 ───

// Clone 返回完全独立的值树副本；Raw 片段按字节原样复制
func (v *Value) Clone() *Value {
	switch v.kind {
	case KindArray:
		clone := NewArray()
		for e := v.elems.First(); e != nil; e = e.Next() {
			clone.Append(e.Value().Clone())
		}
		return clone
	case KindObject:
		clone := NewObject()
		for e := v.fields.First(); e != nil; e = e.Next() {
			f := e.Value()
			clone.Put(f.name, f.value.Clone())
		}
		return clone
	default:
		// 标量与 Raw 无子节点，浅拷贝即独立（字符串不可变）
		c := *v
		return &c
	}
}
