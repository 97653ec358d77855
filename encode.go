package jot

import (
	"math"
	"strconv"
)

// 紧凑编码器（snprintf 式长度探测契约）
//
// Encode 向定长缓冲写入，装不下的字节只计数不写入；返回值永远是
// 完整编码的字节长度（不含终止 NUL）。len(buf) > 0 时输出必定
// NUL 终止。返回值 ≥ len(buf) 表示发生截断；Encode(nil) 即长度探测。
// 编码在运行期不会失败。

// encoder 编码游标。lim 为可写字节上限（已为 NUL 预留槽位）。
type encoder struct {
	buf []byte
	pos int
	lim int
}

func (e *encoder) ch(c byte) {
	if e.pos < e.lim {
		e.buf[e.pos] = c
		e.pos++
	}
}

func (e *encoder) repr(s string) int {
	for i := 0; i < len(s); i++ {
		e.ch(s[i])
	}
	return len(s)
}

// Encode 紧凑编码。写入量以 len(buf) 为界，len(buf) > 0 时 NUL 终止；
// 返回完整编码长度（不含 NUL）。Encode(nil) 返回精确所需长度。
func (v *Value) Encode(buf []byte) int {
	e := &encoder{buf: buf}
	if len(buf) == 0 {
		return encodeValue(v, e)
	}
	e.lim = len(buf) - 1
	n := encodeValue(v, e)
	buf[e.pos] = 0
	return n
}

// EncodeString 返回紧凑编码的字符串形式（两趟: 探测 + 写入）
func (v *Value) EncodeString() string {
	buf := make([]byte, v.Encode(nil)+1)
	n := v.Encode(buf)
	return string(buf[:n])
}

// MarshalJSON 实现 encoding/json.Marshaler
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := make([]byte, v.Encode(nil)+1)
	n := v.Encode(buf)
	return buf[:n], nil
}

func encodeValue(v *Value, e *encoder) int {
	switch v.kind {
	case KindArray:
		return encodeArray(v, e)
	case KindObject:
		return encodeObject(v, e)
	case KindString:
		return encodeStringValue(v.str, e)
	case KindInteger:
		return encodeInt(int64(v.num), e)
	case KindUnsigned:
		return encodeUint(v.num, e)
	case KindFloat:
		return e.repr(formatFloat(math.Float64frombits(v.num)))
	case KindBoolean:
		if v.num != 0 {
			return e.repr("true")
		}
		return e.repr("false")
	case KindNull:
		return e.repr("null")
	default: // KindRaw: 原样输出，不重新校验
		return e.repr(v.str)
	}
}

func encodeArray(v *Value, e *encoder) int {
	e.ch('[')
	count := 1
	for el := v.elems.First(); el != nil; el = el.Next() {
		count += encodeValue(el.Value(), e)
		if el.Next() != nil {
			e.ch(',')
			count++
		}
	}
	e.ch(']')
	return count + 1
}

func encodeObject(v *Value, e *encoder) int {
	e.ch('{')
	count := 1
	for el := v.fields.First(); el != nil; el = el.Next() {
		f := el.Value()
		count += encodeStringValue(f.name, e)
		e.ch(':')
		count++
		count += encodeValue(f.value, e)
		if el.Next() != nil {
			e.ch(',')
			count++
		}
	}
	e.ch('}')
	return count + 1
}

var hexDigit = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// encodeStringValue 写入带引号和转义的 JSON 字符串。
// \b \f \n \r \t 用具名转义；其余 0x00..0x1F 与 0x7F 输出 \u00XX；
// U+0080..U+009F（两字节序列 0xC2 0x80..0x9F）同样输出 \u00XX；
// '\\' 与 '"' 反斜杠转义；其余合法 UTF-8 原样通过。
func encodeStringValue(s string, e *encoder) int {
	e.ch('"')
	count := 1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\b':
			count += e.repr(`\b`)
		case c == '\f':
			count += e.repr(`\f`)
		case c == '\n':
			count += e.repr(`\n`)
		case c == '\r':
			count += e.repr(`\r`)
		case c == '\t':
			count += e.repr(`\t`)
		case c < 0x20 || c == 0x7F:
			count += encodeU00(c, e)
		case c == 0xC2 && i+1 < len(s) && s[i+1] >= 0x80 && s[i+1] <= 0x9F:
			count += encodeU00(s[i+1], e)
			i++
		case c == '\\' || c == '"':
			e.ch('\\')
			e.ch(c)
			count += 2
		default:
			e.ch(c)
			count++
		}
	}
	e.ch('"')
	return count + 1
}

// encodeU00 输出 \u00XX（U+0000..U+00FF 区间的控制字符）
func encodeU00(c byte, e *encoder) int {
	e.ch('\\')
	e.ch('u')
	e.ch('0')
	e.ch('0')
	e.ch(hexDigit[c>>4])
	e.ch(hexDigit[c&0xF])
	return 6
}

// encodeInt 整数快速路径（小数字免 strconv）
func encodeInt(n int64, e *encoder) int {
	if n >= 0 && n < 10 {
		e.ch(byte('0' + n))
		return 1
	}
	var scratch [20]byte
	return e.repr(string(strconv.AppendInt(scratch[:0], n, 10)))
}

func encodeUint(n uint64, e *encoder) int {
	if n < 10 {
		e.ch(byte('0' + n))
		return 1
	}
	var scratch [20]byte
	return e.repr(string(strconv.AppendUint(scratch[:0], n, 10)))
}

// formatFloat 区域无关的浮点渲染，21 位有效数字保证往返精度
// （%.21g 语义: 'g' 格式去尾零，指数过大/过小时转科学计数）
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 21, 64)
}
