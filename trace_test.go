package jot

import (
	"strings"
	"testing"
)

// TestTrace 追踪编码与一次性上限
func TestTrace(t *testing.T) {
	v := mustDecode(t, classicDoc)
	full := v.EncodeString()

	TraceMaxSize(200)
	if got := Trace(v); got != full {
		t.Errorf("trace(200) = %q, want full encoding", got)
	}
	TraceMaxSize(20)
	if got := Trace(v); got != full[:20] {
		t.Errorf("trace(20) = %q, want %q", got, full[:20])
	}
	// 上限是一次性的: 下一次调用恢复默认
	if got := Trace(v); got != full {
		t.Errorf("limit must reset after one call, got %q", got)
	}
	TraceMaxSize(2)
	if got := Trace(v); got != full[:2] {
		t.Errorf("trace(2) = %q", got)
	}
}

// TestTraceSlots 同一条追踪行上最多四个值互不干扰
func TestTraceSlots(t *testing.T) {
	vals := []*Value{NewInteger(1), NewString("two"), NewBoolean(true), NewNull()}
	want := []string{"1", `"two"`, "true", "null"}
	var got []string
	for _, v := range vals {
		got = append(got, Trace(v))
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("trace outputs = %v, want %v", got, want)
	}
}

// TestTraceKind 类型符号名
func TestTraceKind(t *testing.T) {
	cases := []struct {
		v    *Value
		want string
	}{
		{NewArray(), "array"},
		{NewObject(), "object"},
		{NewString(""), "string"},
		{NewInteger(0), "integer"},
		{NewUnsigned(0), "unsigned"},
		{NewFloat(0), "float"},
		{NewBoolean(true), "boolean"},
		{NewNull(), "null"},
		{NewRaw("{}"), "raw"},
	}
	for _, tc := range cases {
		if got := TraceKind(tc.v); got != tc.want {
			t.Errorf("TraceKind = %q, want %q", got, tc.want)
		}
	}
}
