package jot

import (
	"fmt"
	"io"
)

// 美化打印器
//
// 与紧凑编码逐字节一致，除了: 容器条目以 ",\n" 分隔，每个子项前
// 换行并缩进 left_margin + depth*indentation 个空格，闭括号前换行
// 并缩进 left_margin，对象的键值分隔为 ": "。首行不预缩进，末尾
// 不带换行，空容器渲染为 [] / {}。长度探测契约与 Encode 相同。

// Prettyprint 美化编码。leftMargin 为基础缩进，indentation 为缩进步长。
// 写入量以 len(buf) 为界，len(buf) > 0 时 NUL 终止；返回完整编码长度。
func (v *Value) Prettyprint(buf []byte, leftMargin, indentation int) int {
	e := &encoder{buf: buf}
	if len(buf) == 0 {
		return prettyValue(v, e, leftMargin, indentation)
	}
	e.lim = len(buf) - 1
	n := prettyValue(v, e, leftMargin, indentation)
	buf[e.pos] = 0
	return n
}

func (e *encoder) indent(width int) {
	for ; width > 0; width-- {
		e.ch(' ')
	}
}

func prettyValue(v *Value, e *encoder, leftMargin, indentation int) int {
	switch v.kind {
	case KindArray:
		return prettyArray(v, e, leftMargin, indentation)
	case KindObject:
		return prettyObject(v, e, leftMargin, indentation)
	default:
		return encodeValue(v, e)
	}
}

func prettyArray(v *Value, e *encoder, leftMargin, indentation int) int {
	e.ch('[')
	count := 1
	if el := v.elems.First(); el != nil {
		deeper := leftMargin + indentation
		for ; el != nil; el = el.Next() {
			e.ch('\n')
			e.indent(deeper)
			count += deeper + 1
			count += prettyValue(el.Value(), e, deeper, indentation)
			if el.Next() != nil {
				e.ch(',')
				count++
			}
		}
		e.ch('\n')
		e.indent(leftMargin)
		count += leftMargin + 1
	}
	e.ch(']')
	return count + 1
}

func prettyObject(v *Value, e *encoder, leftMargin, indentation int) int {
	e.ch('{')
	count := 1
	if el := v.fields.First(); el != nil {
		deeper := leftMargin + indentation
		for ; el != nil; el = el.Next() {
			f := el.Value()
			e.ch('\n')
			e.indent(deeper)
			count += deeper + 1
			count += encodeStringValue(f.name, e)
			e.ch(':')
			e.ch(' ')
			count += 2
			count += prettyValue(f.value, e, deeper, indentation)
			if el.Next() != nil {
				e.ch(',')
				count++
			}
		}
		e.ch('\n')
		e.indent(leftMargin)
		count += leftMargin + 1
	}
	e.ch('}')
	return count + 1
}

// Dump 把树以美化形式写入 w（基础缩进 0，步长 2），末尾补换行
func (v *Value) Dump(w io.Writer) error {
	size := v.Prettyprint(nil, 0, 2)
	buf := make([]byte, size+1)
	v.Prettyprint(buf, 0, 2)
	_, err := fmt.Fprintf(w, "%s\n", buf[:size])
	return err
}
