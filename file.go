package jot

import (
	"fmt"
	"io"
)

// DecodeReader 读取 r 的全部内容并解码，读取字节数以 maxSize 为上限
// （maxSize < 0 表示不设上限）。
//
// 失败模式可判别:
//   - 读取错误原样包装返回（含被信号中断的系统调用错误）
//   - 超出 maxSize: errors.Is(err, ErrTooLarge)
//   - 语法错误: errors.Is(err, ErrSyntax)；空输入同样归为语法错误
//
// 解码失败不产出部分结果。
func DecodeReader(r io.Reader, maxSize int64) (*Value, error) {
	data, err := readAll(r, maxSize)
	if err != nil {
		return nil, err
	}
	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, nil
}

// readAll 带上限的读取（倍增缓冲，越过上限立即停止）
func readAll(r io.Reader, maxSize int64) ([]byte, error) {
	buf := make([]byte, 0, 512)
	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if maxSize >= 0 && int64(len(buf)) > maxSize {
			return nil, ErrTooLarge
		}
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, fmt.Errorf("jot: read: %w", err)
		}
	}
}
