package jot

// 类型化访问层
//
// 容器按位置 / 键取值并断言类型，缺失或类型不符都按谓词失败处理
// （返回 false，绝不 panic）。数值访问器经由 As* 转换，无损约束
// 见 number.go。

// ─── 数组（按位置） ───

// AtArray 取第 i 个元素，要求其为数组
func (v *Value) AtArray(i int) (*Value, bool) {
	el := v.At(i)
	if el != nil && el.kind == KindArray {
		return el, true
	}
	return nil, false
}

// AtObject 取第 i 个元素，要求其为对象
func (v *Value) AtObject(i int) (*Value, bool) {
	el := v.At(i)
	if el != nil && el.kind == KindObject {
		return el, true
	}
	return nil, false
}

// AtString 取第 i 个元素的字符串内容
func (v *Value) AtString(i int) (string, bool) {
	el := v.At(i)
	if el != nil && el.kind == KindString {
		return el.str, true
	}
	return "", false
}

// AtInt64 取第 i 个元素并无损转换为 int64
func (v *Value) AtInt64(i int) (int64, bool) {
	return v.At(i).AsInt64()
}

// AtUint64 取第 i 个元素并无损转换为 uint64
func (v *Value) AtUint64(i int) (uint64, bool) {
	return v.At(i).AsUint64()
}

// AtFloat64 取第 i 个元素并转换为 float64
func (v *Value) AtFloat64(i int) (float64, bool) {
	return v.At(i).AsFloat64()
}

// AtBool 取第 i 个元素的布尔值
func (v *Value) AtBool(i int) (bool, bool) {
	el := v.At(i)
	if el != nil && el.kind == KindBoolean {
		return el.num != 0, true
	}
	return false, false
}

// ─── 对象（按键） ───

// GetArray 取指定字段，要求其为数组
func (v *Value) GetArray(key string) (*Value, bool) {
	f := v.Get(key)
	if f != nil && f.kind == KindArray {
		return f, true
	}
	return nil, false
}

// GetObject 取指定字段，要求其为对象
func (v *Value) GetObject(key string) (*Value, bool) {
	f := v.Get(key)
	if f != nil && f.kind == KindObject {
		return f, true
	}
	return nil, false
}

// GetString 取指定字段的字符串内容
func (v *Value) GetString(key string) (string, bool) {
	f := v.Get(key)
	if f != nil && f.kind == KindString {
		return f.str, true
	}
	return "", false
}

// GetInt64 取指定字段并无损转换为 int64
func (v *Value) GetInt64(key string) (int64, bool) {
	return v.Get(key).AsInt64()
}

// GetUint64 取指定字段并无损转换为 uint64
func (v *Value) GetUint64(key string) (uint64, bool) {
	return v.Get(key).AsUint64()
}

// GetFloat64 取指定字段并转换为 float64
func (v *Value) GetFloat64(key string) (float64, bool) {
	return v.Get(key).AsFloat64()
}

// GetBool 取指定字段的布尔值
func (v *Value) GetBool(key string) (bool, bool) {
	f := v.Get(key)
	if f != nil && f.kind == KindBoolean {
		return f.num != 0, true
	}
	return false, false
}

// ─── 嵌套导航 ───

// Dig 沿键序列逐层下钻嵌套对象；键缺失或途中遇到非对象即返回 nil
func (v *Value) Dig(keys []string) *Value {
	for _, key := range keys {
		if v == nil || v.kind != KindObject {
			return nil
		}
		v = v.Get(key)
	}
	return v
}

// Fetch Dig 的变参形式: v.Fetch("a", "b", "c")
func (v *Value) Fetch(keys ...string) *Value {
	return v.Dig(keys)
}
