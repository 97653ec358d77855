// Package jot 高性能 JSON 文档树库（自适应索引）
//
// 设计原则（综合 fastjson、gjson、encoding/json 最佳实践）:
//   - 持有型文档树: 解码产出完全独立的 Value 树，子节点由父节点独占所有
//   - 三分数字模型: JSON 泛型数字拆分为 Integer(int64) / Unsigned(uint64) / Float(float64)，
//     整数范围内保持精确，仅在必要时退化为浮点
//   - JIT 索引: 大容器在观测到足够的线性扫描开销后自动升级为 O(1) 查找表，
//     索引是纯缓存，任何结构性修改立即作废
//   - 严格解码: RFC 8259 语法、UTF-8 逐字节校验、UTF-16 surrogate pair 组合、
//     嵌套深度上限防栈溢出
//   - 探测式编码: 编码器遵循 snprintf 式长度探测契约，零容量调用返回精确所需字节数
//
// 用法:
//
//	v, err := jot.DecodeString(`{"name":"yak","version":1}`)
//	name, _ := v.GetString("name")   // "yak"
//	ver, _  := v.GetInt64("version") // 1
//
//	buf := make([]byte, v.Encode(nil)+1)
//	v.Encode(buf) // {"name":"yak","version":1}
//
// 并发: 单棵树的读写均非并发安全；只读负载可在静默期通过
// optimize.Prebuild 预构建索引，之后的纯读取不再修改树内状态。
package jot

// MaxNesting 解码嵌套最大深度（每遇 '[' / '{' 递减，归零即失败）
const MaxNesting = 200

// JITSizeLimit 容器触发 JIT 索引的最小元素数
const JITSizeLimit = 30

// JITAccessLimit 构建 JIT 索引前允许累积的线性扫描开销
const JITAccessLimit = 1000

// jotError 错误常量类型
type jotError string

func (e jotError) Error() string { return string(e) }

// 可判别的错误类别（DecodeReader 的失败模式）
const (
	// ErrSyntax 输入不是合法的 JSON 编码
	ErrSyntax jotError = "jot: syntax error"
	// ErrTooLarge 输入超出调用方给定的字节上限
	ErrTooLarge jotError = "jot: input exceeds size limit"
)
