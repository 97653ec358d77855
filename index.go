package jot

// JIT 索引（lookup overlay）
//
// 数组和对象的自然表示是有序序列，定位访问 O(n)。大容器在高频随机
// 访问下退化为 O(n²)，因此每个容器带一个访问计数器，观测到的扫描
// 开销越过 JITAccessLimit 后一次性物化查找表，之后访问 O(1)。
//
// 索引是纯缓存: 除重复键对象的命中次序外，公开 API 观测不到它的
// 存在与否。任何结构性修改先作废索引再生效（value.go Append/Put/Pop）。
// 构建是幂等的，但非并发安全——并发读竞争建索引属未定义行为，
// 只读负载请在静默期用 optimize.Prebuild 预构建。

// clobberArray 作废数组索引。索引不存在时不动计数器（与对象对称，
// 保证"建表→修改→重新计费"的循环语义）。
func (v *Value) clobberArray() {
	if v.aidx == nil {
		return
	}
	v.aidx = nil
	v.access = 0
}

// clobberObject 作废对象索引
func (v *Value) clobberObject() {
	if v.oidx == nil {
		return
	}
	v.oidx = nil
	v.access = 0
}

// buildArrayIndex 物化数组查找表（按序的子节点指针连续表）
func (v *Value) buildArrayIndex() {
	tab := make([]*Value, 0, v.elems.Len())
	for e := v.elems.First(); e != nil; e = e.Next() {
		tab = append(tab, e.Value())
	}
	v.aidx = tab
}

// buildObjectIndex 物化对象哈希表。重复键时后插入者覆盖先插入者；
// 序列视图仍按插入顺序保留全部字段。
func (v *Value) buildObjectIndex() {
	tab := make(map[string]*Value, v.fields.Len())
	for e := v.fields.First(); e != nil; e = e.Next() {
		f := e.Value()
		tab[f.name] = f.value
	}
	v.oidx = tab
}

// BuildIndex 立即为容器构建查找索引（非递归，标量上为 no-op）。
//
// 正常路径下索引按访问开销自动构建，无需调用本方法；它是静默期
// 预构建的入口：只读负载在进入并发读取前先把索引建好，之后的
// 读取不再修改树内状态。整树递归预构建见 optimize.Prebuild。
func (v *Value) BuildIndex() {
	switch v.kind {
	case KindArray:
		if v.aidx == nil {
			v.buildArrayIndex()
		}
	case KindObject:
		if v.oidx == nil {
			v.buildObjectIndex()
		}
	}
}

// At 返回数组第 i 个元素（从 0 起），越界或非数组返回 nil
func (v *Value) At(i int) *Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	if i < 0 || i >= v.elems.Len() {
		return nil
	}
	if v.aidx != nil {
		return v.aidx[i]
	}
	if v.elems.Len() >= JITSizeLimit {
		// 以目标下标近似本次线性扫描的开销
		v.access += uint64(i)
		if v.access >= JITAccessLimit {
			v.buildArrayIndex()
			return v.aidx[i]
		}
	}
	e := v.elems.First()
	for ; i > 0; i-- {
		e = e.Next()
	}
	return e.Value()
}

// Get 返回对象中指定键的值，不存在或非对象返回 nil。
// 重复键: 线性扫描首个命中，索引建立后最后插入者命中。
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	if v.oidx != nil {
		return v.oidx[key]
	}
	if v.fields.Len() >= JITSizeLimit {
		for e := v.fields.First(); e != nil; e = e.Next() {
			v.access++
			if v.access >= JITAccessLimit {
				v.buildObjectIndex()
				return v.oidx[key]
			}
			if e.Value().name == key {
				return e.Value().value
			}
		}
		return nil
	}
	// 小对象: 纯线性扫描，不计费
	for e := v.fields.First(); e != nil; e = e.Next() {
		if e.Value().name == key {
			return e.Value().value
		}
	}
	return nil
}
