package jot

import (
	"strings"
	"testing"
)

// 经典端到端文档（与原生测试数据一致）
const classicDoc = "\n" +
	"{\n" +
	"  \"string\" : \"\\t\\\"¿xyzzy? \\uD852\\udf62\",\n" +
	"  \"truth\" : true,\n" +
	"  \"lie\" : false,\n" +
	"  \"nothing\" : null,\n" +
	"  \"year\" : 2017,\n" +
	"  \"months\" : [ 1, 3, 5, 7, 8, 10, 12 ],\n" +
	"  \"π\" : 31415.9265e-4\n" +
	"}\n"

const classicCompact = "{" +
	"\"string\":\"\\t\\\"¿xyzzy? 𤭢\"," +
	"\"truth\":true," +
	"\"lie\":false," +
	"\"nothing\":null," +
	"\"year\":2017," +
	"\"months\":[1,3,5,7,8,10,12]," +
	"\"π\":3.14159265000000020862" +
	"}"

// TestEncodeClassic 端到端: 解码经典文档后紧凑编码，字段保持插入顺序
func TestEncodeClassic(t *testing.T) {
	v, err := DecodeString(classicDoc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := v.EncodeString(); got != classicCompact {
		t.Errorf("encode = %s, want %s", got, classicCompact)
	}
}

// TestEncodeScalars 测试各类标量的紧凑编码
func TestEncodeScalars(t *testing.T) {
	cases := []struct {
		v    *Value
		want string
	}{
		{NewNull(), "null"},
		{NewBoolean(true), "true"},
		{NewBoolean(false), "false"},
		{NewInteger(0), "0"},
		{NewInteger(7), "7"},
		{NewInteger(-42), "-42"},
		{NewInteger(-9223372036854775808), "-9223372036854775808"},
		{NewUnsigned(18446744073709551615), "18446744073709551615"},
		{NewString(""), `""`},
		{NewString("hello"), `"hello"`},
		{NewRaw(`[1, 2 ,3]`), `[1, 2 ,3]`}, // Raw 原样输出，不重新校验
		{NewArray(), "[]"},
		{NewObject(), "{}"},
	}
	for _, tc := range cases {
		if got := tc.v.EncodeString(); got != tc.want {
			t.Errorf("encode = %q, want %q", got, tc.want)
		}
	}
}

// TestEncodeStringEscapes 测试字符串转义规则
func TestEncodeStringEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x01", `"\u0001"`},
		{"\x1f", `"\u001f"`},
		{"\x7f", `"\u007f"`},
		{"\x00", `"\u0000"`},
		{`\"`, `"\\\""`},
		{"\xc2\x80", `"\u0080"`},   // U+0080 控制字符
		{"\xc2\x9f", `"\u009f"`},   // U+009F 控制字符
		{"\xc2\xa0", "\"\xc2\xa0\""}, // U+00A0 非控制，原样通过
		{"¿π中𤭢", `"¿π中𤭢"`},
	}
	for _, tc := range cases {
		if got := NewString(tc.in).EncodeString(); got != tc.want {
			t.Errorf("encode %q = %s, want %s", tc.in, got, tc.want)
		}
	}
}

// TestEncodeSizeProbe 长度探测定律: Encode(nil) 等于完整编码长度
func TestEncodeSizeProbe(t *testing.T) {
	v, err := DecodeString(classicDoc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	probe := v.Encode(nil)
	big := make([]byte, 4096)
	n := v.Encode(big)
	if probe != n {
		t.Errorf("probe = %d, full = %d", probe, n)
	}
	if probe != len(classicCompact) {
		t.Errorf("probe = %d, want %d", probe, len(classicCompact))
	}
	if string(big[:n]) != classicCompact {
		t.Errorf("buffer content mismatch")
	}
	if big[n] != 0 {
		t.Errorf("missing NUL terminator")
	}
}

// TestEncodeTruncation 容量不足时尽量写入、NUL 终止，返回值仍为完整长度
func TestEncodeTruncation(t *testing.T) {
	v, _ := DecodeString(`[1,22,333]`)
	full := v.EncodeString() // "[1,22,333]"
	for size := 1; size <= len(full)+1; size++ {
		buf := make([]byte, size)
		n := v.Encode(buf)
		if n != len(full) {
			t.Fatalf("size %d: return = %d, want %d", size, n, len(full))
		}
		written := size - 1
		if written > len(full) {
			written = len(full)
		}
		if string(buf[:written]) != full[:written] {
			t.Errorf("size %d: prefix = %q", size, buf[:written])
		}
		if buf[written] != 0 {
			t.Errorf("size %d: missing NUL", size)
		}
		truncated := n >= size
		if truncated != (written < len(full)) {
			t.Errorf("size %d: truncation indicator inconsistent", size)
		}
	}
}

// TestEncodeFloat 浮点渲染: 21 位有效数字，区域无关
func TestEncodeFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3.14159265, "3.14159265000000020862"},
		{0.5, "0.5"},
		{1e21, "1e+21"}, // 2^21·5^21 精确可表示，指数 ≥ 精度转科学计数
	}
	for _, tc := range cases {
		if got := NewFloat(tc.in).EncodeString(); got != tc.want {
			t.Errorf("encode %v = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestEncodeRoundTrip 不含 Float/Raw 的树在零容差下往返相等；
// 含 Float 的树在 1e-12 容差下往返相等
func TestEncodeRoundTrip(t *testing.T) {
	exact := []string{
		`{"a":[1,-2,9223372036854775807],"b":{"c":null,"d":[true,false]},"e":"π"}`,
		`[18446744073709551615,-9223372036854775808,"",{},[]]`,
	}
	for _, in := range exact {
		v, err := DecodeString(in)
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		back, err := DecodeString(v.EncodeString())
		if err != nil {
			t.Fatalf("re-decode: %v", err)
		}
		if !Equal(v, back, 0) {
			t.Errorf("round trip of %q not equal", in)
		}
	}
	withFloat, err := DecodeString(`{"pi":3.14159265,"xs":[0.1,2.5e17,-1.25e-7]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	back, err := DecodeString(withFloat.EncodeString())
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if !Equal(withFloat, back, 1e-12) {
		t.Errorf("float round trip not equal under 1e-12")
	}
}

// TestEncodeNegativeZeroStable "-0.0" 的编码在二次往返后保持稳定
func TestEncodeNegativeZeroStable(t *testing.T) {
	v, err := DecodeString("-0.0")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	first := v.EncodeString()
	v2, err := DecodeString(first)
	if err != nil {
		t.Fatalf("re-decode %q: %v", first, err)
	}
	if second := v2.EncodeString(); second != first {
		t.Errorf("unstable round trip: %q then %q", first, second)
	}
}

// TestMarshalJSON 兼容 encoding/json.Marshaler
func TestMarshalJSON(t *testing.T) {
	v, _ := DecodeString(`{"a":1}`)
	b, err := v.MarshalJSON()
	if err != nil || string(b) != `{"a":1}` {
		t.Errorf("MarshalJSON = %q, %v", b, err)
	}
}

// TestPrettyStripEquals 剥去字符串外的缩进空白后与紧凑编码一致
func TestPrettyStripEquals(t *testing.T) {
	v, err := DecodeString(classicDoc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	pretty := make([]byte, v.Prettyprint(nil, 0, 4)+1)
	n := v.Prettyprint(pretty, 0, 4)
	stripped := stripOutsideStrings(string(pretty[:n]))
	compact := v.EncodeString()
	if stripped != compact {
		t.Errorf("stripped pretty != compact:\n%s\n%s", stripped, compact)
	}
}

// stripOutsideStrings 删除字符串字面量之外的空白
func stripOutsideStrings(s string) string {
	var b strings.Builder
	inStr := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			b.WriteByte(c)
			if c == '\\' {
				i++
				if i < len(s) {
					b.WriteByte(s[i])
				}
			} else if c == '"' {
				inStr = false
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r':
		case '"':
			inStr = true
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
