package jot

import "sync"

// 追踪插件接口
//
// 面向宿主追踪系统的三个回调: 值编码（带字节上限）、类型名、粘性
// 上限设置。输出写入固定 4 槽环形缓冲，同一条追踪行上最多四个
// 追踪值互不干扰。这是进程级的唯一可变状态，仅从追踪回调访问，
// 用互斥锁保护（C 版依赖宿主的临界区，Go 调用方得到锁）。

const (
	traceSlots       = 4
	traceDefaultSize = 2048
)

var traceData = struct {
	sync.Mutex
	next    int
	slots   [traceSlots]string
	maxSize int
}{maxSize: traceDefaultSize}

// Trace 返回 v 的紧凑编码，长度截断到当前上限。
// 上限是一次性的: 每次调用后恢复为默认值（2048）。
func Trace(v *Value) string {
	traceData.Lock()
	defer traceData.Unlock()
	size := v.Encode(nil)
	if size > traceData.maxSize {
		size = traceData.maxSize
	}
	traceData.maxSize = traceDefaultSize
	buf := make([]byte, size+1)
	v.Encode(buf)
	out := string(buf[:size])
	traceData.slots[traceData.next%traceSlots] = out
	traceData.next++
	return out
}

// TraceMaxSize 设置下一次 Trace 调用的输出上限（粘性伪字段），恒返回 ""
func TraceMaxSize(size int) string {
	traceData.Lock()
	defer traceData.Unlock()
	traceData.maxSize = size
	return ""
}

// TraceKind 返回 v 的类型符号名
func TraceKind(v *Value) string {
	return v.kind.String()
}
